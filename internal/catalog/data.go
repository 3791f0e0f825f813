package catalog

import "github.com/phongkhamtamthan/clinic-api/internal/model"

// Default builds the catalog for the practice. The records are the
// clinic's published content and only change with a deploy.
func Default() (*Catalog, error) {
	return New(defaultProfile, defaultServices, defaultTestimonials, defaultClinic)
}

var defaultProfile = model.DoctorProfile{
	Name:            "BS. Lê Quang Vy",
	Title:           "Tiến sĩ, Bác sĩ Chuyên khoa II",
	Specialty:       "Tâm Thần Kinh",
	SubSpecialty:    "Trị Liệu Tâm Lý & Rối Loạn Lo Âu",
	Bio:             "Bác sĩ Lê Quang Vy là chuyên gia tâm thần kinh hàng đầu với hơn 15 năm kinh nghiệm trong lĩnh vực chẩn đoán và điều trị các rối loạn tâm thần, lo âu, trầm cảm và các bệnh lý thần kinh. Nguyên Trưởng khoa Tâm Thần Bệnh viện Chợ Rẫy, bác sĩ kết hợp y học hiện đại với liệu pháp tâm lý chuyên sâu, luôn đặt sức khỏe tinh thần của bệnh nhân lên hàng đầu.",
	YearsExperience: 15,
	PatientsServed:  10000,
	SuccessRate:     96.5,
	ImageURL:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=1000",
	Credentials: []model.Credential{
		{Title: "Tiến sĩ Y khoa - Chuyên ngành Tâm Thần", Institution: "Đại học Y Dược TP.HCM", Year: 2008},
		{Title: "Bác sĩ Nội trú - Tâm Thần Kinh", Institution: "Bệnh viện Chợ Rẫy", Year: 2011},
		{Title: "Chuyên khoa II - Tâm Thần", Institution: "Bệnh viện Tâm Thần TP.HCM", Year: 2014},
		{Title: "Chứng chỉ Tâm Lý Trị Liệu", Institution: "Hiệp hội Tâm Thần Hoa Kỳ (APA)", Year: 2015},
	},
	Languages: []string{"Tiếng Việt", "Tiếng Anh"},
}

var defaultServices = []model.Service{
	{
		ID:              "srv_consult",
		Title:           "Khám Tư Vấn Tâm Thần",
		Description:     "Đánh giá toàn diện sức khỏe tâm thần bao gồm tiền sử bệnh, khám lâm sàng và lập kế hoạch điều trị cá nhân hóa.",
		PriceStart:      500000,
		DurationMinutes: 60,
		Icon:            "brain",
	},
	{
		ID:              "srv_depression",
		Title:           "Điều Trị Trầm Cảm",
		Description:     "Chẩn đoán và điều trị các rối loạn trầm cảm bằng kết hợp thuốc và liệu pháp tâm lý theo tiêu chuẩn quốc tế.",
		PriceStart:      600000,
		DurationMinutes: 45,
		Icon:            "heart",
	},
	{
		ID:              "srv_anxiety",
		Title:           "Điều Trị Rối Loạn Lo Âu",
		Description:     "Điều trị các rối loạn lo âu, hoảng sợ, ám ảnh cưỡng chế (OCD) và rối loạn stress sau sang chấn (PTSD).",
		PriceStart:      600000,
		DurationMinutes: 45,
		Icon:            "shield",
	},
	{
		ID:              "srv_sleep",
		Title:           "Điều Trị Rối Loạn Giấc Ngủ",
		Description:     "Chẩn đoán và điều trị mất ngủ, ngủ không sâu giấc, ác mộng và các rối loạn giấc ngủ khác.",
		PriceStart:      500000,
		DurationMinutes: 45,
		Icon:            "moon",
	},
	{
		ID:              "srv_therapy",
		Title:           "Tâm Lý Trị Liệu",
		Description:     "Liệu pháp CBT, DBT và các phương pháp trị liệu tâm lý hiện đại giúp thay đổi suy nghĩ và hành vi tiêu cực.",
		PriceStart:      700000,
		DurationMinutes: 60,
		Icon:            "message",
	},
	{
		ID:              "srv_child",
		Title:           "Tâm Thần Nhi Khoa",
		Description:     "Chẩn đoán và điều trị các rối loạn tâm thần ở trẻ em và thanh thiếu niên: ADHD, tự kỷ, rối loạn hành vi.",
		PriceStart:      600000,
		DurationMinutes: 60,
		Icon:            "users",
	},
}

var defaultTestimonials = []model.Testimonial{
	{
		ID:           "test_1",
		PatientName:  "Chị Minh T.",
		PatientImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Tôi đã chiến đấu với trầm cảm suốt 3 năm trước khi gặp bác sĩ. Bác sĩ kiên nhẫn lắng nghe và xây dựng phác đồ điều trị phù hợp. Giờ tôi đã có thể sống vui vẻ trở lại.",
		Date:         "2025-12-15",
		Treatment:    "Điều Trị Trầm Cảm",
	},
	{
		ID:           "test_2",
		PatientName:  "Anh Tuấn L.",
		PatientImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Cơn hoảng sợ làm tôi không thể đi làm. Bác sĩ đã giúp tôi hiểu nguyên nhân và cách kiểm soát. Sau 6 tháng điều trị, tôi đã trở lại cuộc sống bình thường.",
		Date:         "2025-11-28",
		Treatment:    "Điều Trị Rối Loạn Lo Âu",
	},
	{
		ID:           "test_3",
		PatientName:  "Phụ huynh bé Khoa",
		PatientImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Con trai tôi được chẩn đoán ADHD khi 7 tuổi. Bác sĩ không chỉ điều trị cho con mà còn hướng dẫn gia đình cách hỗ trợ. Kết quả học tập của con cải thiện rõ rệt.",
		Date:         "2025-10-10",
		Treatment:    "Tâm Thần Nhi Khoa",
	},
	{
		ID:           "test_4",
		PatientName:  "Chị Hương M.",
		PatientImage: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Mất ngủ triền miên khiến tôi kiệt sức. Bác sĩ tìm ra nguyên nhân sâu xa và điều trị hiệu quả. Giờ tôi ngủ ngon mỗi đêm mà không cần thuốc ngủ.",
		Date:         "2025-09-22",
		Treatment:    "Điều Trị Rối Loạn Giấc Ngủ",
	},
	{
		ID:           "test_5",
		PatientName:  "Anh Phước N.",
		PatientImage: "https://images.unsplash.com/photo-1566492031773-4f4e44671857?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Tôi từng nghĩ đến tâm thần là điều đáng xấu hổ. Bác sĩ đã thay đổi suy nghĩ đó. Phòng khám chuyên nghiệp, kín đáo và bác sĩ rất tận tâm.",
		Date:         "2025-09-05",
		Treatment:    "Khám Tư Vấn Tâm Thần",
	},
	{
		ID:           "test_6",
		PatientName:  "Chị Thu H.",
		PatientImage: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Liệu pháp CBT với bác sĩ đã thay đổi cuộc sống tôi. Tôi học được cách nhận diện và thay đổi những suy nghĩ tiêu cực. Cảm ơn bác sĩ rất nhiều!",
		Date:         "2025-08-18",
		Treatment:    "Tâm Lý Trị Liệu",
	},
	{
		ID:           "test_7",
		PatientName:  "Anh Đức V.",
		PatientImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Công việc áp lực khiến tôi bị burnout nghiêm trọng. Bác sĩ giúp tôi phục hồi và học cách cân bằng cuộc sống. Highly recommend!",
		Date:         "2025-08-02",
		Treatment:    "Khám Tư Vấn Tâm Thần",
	},
	{
		ID:           "test_8",
		PatientName:  "Bà Nga T.",
		PatientImage: "https://images.unsplash.com/photo-1559839734-2b71ea860485?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Ở tuổi 65, tôi bị trầm cảm sau khi nghỉ hưu. Bác sĩ rất kiên nhẫn và thấu hiểu. Giờ tôi đã tìm lại niềm vui sống.",
		Date:         "2025-07-20",
		Treatment:    "Điều Trị Trầm Cảm",
	},
	{
		ID:           "test_9",
		PatientName:  "Anh Khoa N.",
		PatientImage: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?auto=format&fit=crop&q=80&w=200",
		Rating:       4,
		Comment:      "Dịch vụ tốt, bác sĩ chuyên nghiệp. Chỉ tiếc là phải đặt lịch trước khá lâu vì phòng khám đông. Không gian riêng tư và thoải mái.",
		Date:         "2025-07-05",
		Treatment:    "Tâm Lý Trị Liệu",
	},
	{
		ID:           "test_10",
		PatientName:  "Chị Mai A.",
		PatientImage: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&q=80&w=200",
		Rating:       5,
		Comment:      "Bác sĩ đã giúp tôi vượt qua nỗi sợ xã hội. Giờ tôi có thể nói trước đám đông mà không còn run sợ. Cuộc sống thay đổi hoàn toàn!",
		Date:         "2025-06-15",
		Treatment:    "Điều Trị Rối Loạn Lo Âu",
	},
}

var defaultClinic = model.ClinicInfo{
	Name:       "Phòng Khám Tâm Thần Kinh Bác Sĩ Lê Quang Vy",
	Address:    "145 Trần Quang Khải, Phường Tân Định",
	City:       "Quận 1",
	Region:     "TP. Hồ Chí Minh",
	PostalCode: "700000",
	Phone:      "(028) 3844 5678",
	Email:      "lienhe@phongkhamtamthan.vn",
	Hours: map[string]string{
		"monday":    "8:00 - 17:00",
		"tuesday":   "8:00 - 17:00",
		"wednesday": "8:00 - 17:00",
		"thursday":  "8:00 - 17:00",
		"friday":    "8:00 - 17:00",
		"saturday":  "8:00 - 12:00",
		"sunday":    "Nghỉ",
	},
	MapURL: "https://maps.google.com/?q=Phu+Nhuan+HCMC",
}
