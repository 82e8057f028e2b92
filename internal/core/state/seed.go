package state

import "github.com/homeservices/directory/internal/core/domain"

// seedProviders is the catalog a fresh store starts with when no providers
// snapshot exists yet.
func seedProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID: "1", Name: "Ali Raza", ServiceType: domain.CategoryPlumber,
			City: "DHA Phase 3, Lahore", Contact: "0321-6547890", Experience: 6,
			Photo: domain.DefaultPhotoURL("Ali Raza"), Rating: 4.7,
			Reviews: []domain.Review{
				{ID: "1", Name: "Ahmed Khan", Rating: 5, Comment: "Very professional and quick service!", Date: "2025-01-10"},
				{ID: "2", Name: "Sara Ahmed", Rating: 4, Comment: "Good work, reasonable prices.", Date: "2025-01-08"},
			},
		},
		{
			ID: "2", Name: "Waqas & Sons", ServiceType: domain.CategoryPlumber,
			City: "Karim Park, Lahore", Contact: "0300-9876541", Experience: 8,
			Photo: domain.DefaultPhotoURL("Waqas Sons"), Rating: 4.5,
			Reviews: []domain.Review{},
		},
		{
			ID: "3", Name: "Shahid", ServiceType: domain.CategoryPlumber,
			City: "DHA Phase 5, Lahore", Contact: "0332-1122334", Experience: 10,
			Photo: domain.DefaultPhotoURL("Shahid"), Rating: 4.8,
			Reviews: []domain.Review{
				{ID: "3", Name: "Fatima Ali", Rating: 5, Comment: "Fixed the leak perfectly!", Date: "2025-01-12"},
			},
		},
		{
			ID: "4", Name: "Umar Plumber", ServiceType: domain.CategoryPlumber,
			City: "Model Town, Lahore", Contact: "0314-6677889", Experience: 5,
			Photo: domain.DefaultPhotoURL("Umar Plumber"), Rating: 4.6,
			Reviews: []domain.Review{},
		},
		{
			ID: "5", Name: "Mubeen", ServiceType: domain.CategoryPlumber,
			City: "Garden Town, Lahore", Contact: "0345-1122443", Experience: 7,
			Photo: domain.DefaultPhotoURL("Mubeen"), Rating: 4.9,
			Reviews: []domain.Review{
				{ID: "4", Name: "Zainab Hassan", Rating: 5, Comment: "Excellent service, highly recommended!", Date: "2025-01-11"},
			},
		},
		{
			ID: "6", Name: "Bilal", ServiceType: domain.CategoryElectrician,
			City: "DHA Phase 6, Lahore", Contact: "0321-8899001", Experience: 9,
			Photo: domain.DefaultPhotoURL("Bilal"), Rating: 4.8,
			Reviews: []domain.Review{
				{ID: "5", Name: "Hassan Malik", Rating: 5, Comment: "Very knowledgeable and professional.", Date: "2025-01-09"},
			},
		},
		{
			ID: "7", Name: "Rehman Electrical Experts", ServiceType: domain.CategoryElectrician,
			City: "Karim Park, Lahore", Contact: "0333-4455667", Experience: 6,
			Photo: domain.DefaultPhotoURL("Rehman Electrical"), Rating: 4.6,
			Reviews: []domain.Review{},
		},
		{
			ID: "8", Name: "Hamza", ServiceType: domain.CategoryElectrician,
			City: "Faisal Town, Lahore", Contact: "0305-9988776", Experience: 5,
			Photo: domain.DefaultPhotoURL("Hamza"), Rating: 4.7,
			Reviews: []domain.Review{},
		},
		{
			ID: "9", Name: "Zain", ServiceType: domain.CategoryElectrician,
			City: "DHA Phase 2, Lahore", Contact: "0324-5544332", Experience: 11,
			Photo: domain.DefaultPhotoURL("Zain"), Rating: 4.9,
			Reviews: []domain.Review{
				{ID: "6", Name: "Ayesha Tariq", Rating: 5, Comment: "Best electrician in Lahore!", Date: "2025-01-13"},
			},
		},
		{
			ID: "10", Name: "Asim Wiring Services", ServiceType: domain.CategoryElectrician,
			City: "Iqbal Town, Lahore", Contact: "0311-3322110", Experience: 4,
			Photo: domain.DefaultPhotoURL("Asim Wiring"), Rating: 4.5,
			Reviews: []domain.Review{},
		},
		{
			ID: "11", Name: "Bilaal", ServiceType: domain.CategoryACService,
			City: "DHA Phase 5, Lahore", Contact: "0331-5544667", Experience: 8,
			Photo: domain.DefaultPhotoURL("Bilaal"), Rating: 4.7,
			Reviews: []domain.Review{},
		},
		{
			ID: "12", Name: "Arslan", ServiceType: domain.CategoryACService,
			City: "Karim Park, Lahore", Contact: "0344-6655778", Experience: 5,
			Photo: domain.DefaultPhotoURL("Arslan"), Rating: 4.6,
			Reviews: []domain.Review{},
		},
		{
			ID: "13", Name: "Nadeem", ServiceType: domain.CategoryACService,
			City: "Model Town, Lahore", Contact: "0321-7788990", Experience: 10,
			Photo: domain.DefaultPhotoURL("Nadeem"), Rating: 4.8,
			Reviews: []domain.Review{
				{ID: "7", Name: "Usman Ali", Rating: 5, Comment: "AC is cooling perfectly now!", Date: "2025-01-14"},
			},
		},
		{
			ID: "14", Name: "Naeem Cooling Experts", ServiceType: domain.CategoryACService,
			City: "Garden Town, Lahore", Contact: "0335-5566771", Experience: 12,
			Photo: domain.DefaultPhotoURL("Naeem Cooling"), Rating: 4.9,
			Reviews: []domain.Review{},
		},
		{
			ID: "15", Name: "Rashid AC Maintenance", ServiceType: domain.CategoryACService,
			City: "DHA Phase 8, Lahore", Contact: "0302-6677885", Experience: 7,
			Photo: domain.DefaultPhotoURL("Rashid AC"), Rating: 4.7,
			Reviews: []domain.Review{},
		},
		{
			ID: "16", Name: "Shafia", ServiceType: domain.CategoryCleaning,
			City: "DHA Phase 4, Lahore", Contact: "0320-8899220", Experience: 5,
			Photo: domain.DefaultPhotoURL("Shafia"), Rating: 4.9,
			Reviews: []domain.Review{
				{ID: "8", Name: "Mariam Sheikh", Rating: 5, Comment: "House looks spotless, amazing work!", Date: "2025-01-15"},
			},
		},
		{
			ID: "17", Name: "Saima", ServiceType: domain.CategoryCleaning,
			City: "Karim Park, Lahore", Contact: "0345-6677881", Experience: 4,
			Photo: domain.DefaultPhotoURL("Saima"), Rating: 4.8,
			Reviews: []domain.Review{},
		},
		{
			ID: "18", Name: "Nabeela", ServiceType: domain.CategoryCleaning,
			City: "Gulberg, Lahore", Contact: "0332-9988772", Experience: 3,
			Photo: domain.DefaultPhotoURL("Nabeela"), Rating: 4.6,
			Reviews: []domain.Review{},
		},
		{
			ID: "19", Name: "Samreen", ServiceType: domain.CategoryCleaning,
			City: "Model Town, Lahore", Contact: "0304-5566772", Experience: 6,
			Photo: domain.DefaultPhotoURL("Samreen"), Rating: 4.7,
			Reviews: []domain.Review{},
		},
		{
			ID: "20", Name: "Ayesha", ServiceType: domain.CategoryCleaning,
			City: "DHA Phase 2, Lahore", Contact: "0323-4455660", Experience: 7,
			Photo: domain.DefaultPhotoURL("Ayesha"), Rating: 4.8,
			Reviews: []domain.Review{},
		},
	}
}
