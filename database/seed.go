package database

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"belajaradmin/config"
	"belajaradmin/models"
	"belajaradmin/store"
)

// Seed fills a repository set with development data so the dashboard is
// usable before a production database exists. Mirrors the sample records
// the frontend was built against.
func Seed(r store.Repositories) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Seeding failed hashing admin password: %v", err)
	}
	admin := models.Admin{
		Email:    "admin@belajarseru.id",
		FullName: "Super Admin",
		Password: string(hash),
		Role:     "ADMIN",
		IsActive: true,
	}
	mustCreate(r.Admins.Create(ctx, &admin))

	topics := []models.Topic{
		{Name: "Penjumlahan dan Pengurangan", Slug: "penjumlahan-dan-pengurangan", Subject: models.SubjectMath, GradeLevel: 1, OrderIndex: 1, IconURL: "https://cdn.belajarseru.id/icons/math-add.png"},
		{Name: "Perkalian Dasar", Slug: "perkalian-dasar", Subject: models.SubjectMath, GradeLevel: 2, OrderIndex: 2, IconURL: "https://cdn.belajarseru.id/icons/math-mul.png"},
		{Name: "Pembagian Bilangan", Slug: "pembagian-bilangan", Subject: models.SubjectMath, GradeLevel: 3, OrderIndex: 3, IconURL: "https://cdn.belajarseru.id/icons/math-div.png"},
		{Name: "Pecahan Sederhana", Slug: "pecahan-sederhana", Subject: models.SubjectMath, GradeLevel: 4, OrderIndex: 4, IconURL: "https://cdn.belajarseru.id/icons/math-frac.png"},
		{Name: "Makhluk Hidup", Slug: "makhluk-hidup", Subject: models.SubjectScience, GradeLevel: 1, OrderIndex: 5, IconURL: "https://cdn.belajarseru.id/icons/science-life.png"},
	}
	for i := range topics {
		mustCreate(r.Topics.Create(ctx, &topics[i]))
	}

	questions := []models.Question{
		{
			TopicID:    topics[0].ID,
			Difficulty: 1,
			Type:       models.QuestionMCQ,
			Content:    datatypes.NewJSONType(models.QuestionContent{Text: "Berapa hasil dari 2 + 3?"}),
			Options: datatypes.NewJSONSlice([]models.QuestionOption{
				{ID: "A", Value: "4"},
				{ID: "B", Value: "5", IsCorrect: true},
				{ID: "C", Value: "6"},
				{ID: "D", Value: "7"},
			}),
			CorrectAnswer: "B",
			Explanation:   "Karena 2 ditambah 3 sama dengan 5",
		},
		{
			TopicID:    topics[0].ID,
			Difficulty: 2,
			Type:       models.QuestionMCQ,
			Content:    datatypes.NewJSONType(models.QuestionContent{Text: "Hasil dari 10 - 4 adalah?"}),
			Options: datatypes.NewJSONSlice([]models.QuestionOption{
				{ID: "A", Value: "5"},
				{ID: "B", Value: "6", IsCorrect: true},
				{ID: "C", Value: "7"},
				{ID: "D", Value: "8"},
			}),
			CorrectAnswer: "B",
			Explanation:   "10 dikurangi 4 adalah 6",
		},
		{
			TopicID:       topics[1].ID,
			Difficulty:    1,
			Type:          models.QuestionFillIn,
			Content:       datatypes.NewJSONType(models.QuestionContent{Text: "3 × 4 = ...", LaTeX: "3 \\times 4"}),
			CorrectAnswer: "12",
			Explanation:   "3 dikali 4 sama dengan 12",
		},
	}
	for i := range questions {
		mustCreate(r.Questions.Create(ctx, &questions[i]))
	}

	plans := []models.SubscriptionPlan{
		{
			Name: "Basic Plan", Slug: "basic-plan", Price: 0, OriginalPrice: 0, DurationDays: 365,
			Features: datatypes.NewJSONSlice([]string{"Akses materi terbatas", "10 latihan soal per hari"}),
			IsActive: true,
		},
		{
			Name: "Premium Monthly", Slug: "premium-monthly", Price: 50000, OriginalPrice: 75000, DurationDays: 30,
			Features: datatypes.NewJSONSlice([]string{"Akses semua materi pelajaran", "Latihan soal unlimited", "Progress tracking", "Leaderboard global"}),
			IsActive: true,
		},
		{
			Name: "Premium Yearly", Slug: "premium-yearly", Price: 500000, OriginalPrice: 900000, DurationDays: 365,
			Features: datatypes.NewJSONSlice([]string{"Akses semua materi pelajaran", "Latihan soal unlimited", "Progress tracking", "Leaderboard global", "Konsultasi dengan tutor", "Sertifikat digital"}),
			IsActive: true, IsRecommended: true,
		},
	}
	for i := range plans {
		mustCreate(r.Plans.Create(ctx, &plans[i]))
	}

	items := []models.ShopItem{
		{Name: "Topi Graduation", Type: models.ItemHead, CostCoins: 500, AssetURL: "https://cdn.belajarseru.id/items/hat-graduation.png"},
		{Name: "Baju Superhero", Type: models.ItemOutfit, CostCoins: 1000, AssetURL: "https://cdn.belajarseru.id/items/outfit-hero.png", IsPremium: true},
		{Name: "Background Luar Angkasa", Type: models.ItemBackground, CostCoins: 1500, AssetURL: "https://cdn.belajarseru.id/items/bg-space.png", IsPremium: true},
		{Name: "Topi Wizard", Type: models.ItemHead, CostCoins: 750, AssetURL: "https://cdn.belajarseru.id/items/hat-wizard.png"},
		{Name: "Background Hutan", Type: models.ItemBackground, CostCoins: 800, AssetURL: "https://cdn.belajarseru.id/items/bg-forest.png"},
	}
	for i := range items {
		mustCreate(r.ShopItems.Create(ctx, &items[i]))
	}

	parents := []models.Parent{
		{Email: "budi.santoso@example.com", FullName: "Budi Santoso", Phone: "+6281234567890"},
		{Email: "siti.nurhaliza@example.com", FullName: "Siti Nurhaliza", Phone: "+6281298765432"},
	}
	for i := range parents {
		mustCreate(r.Parents.Create(ctx, &parents[i]))
	}

	validUntil := time.Now().AddDate(0, 1, 0)
	expiredAt := time.Now().AddDate(0, 0, -7)
	students := []models.Student{
		{
			ParentID: parents[0].ID, Username: "adi2017", DisplayName: "Adi Santoso",
			Grade: 2, SchoolName: "SDN 1 Jakarta", XPTotal: 1250, Level: 5, Coins: 320,
			SubPlanID: &plans[1].ID, SubStatus: models.SubActive, SubValidUntil: &validUntil,
			AvatarEquipped: datatypes.NewJSONType(map[string]uint{"head": items[0].ID}),
		},
		{
			ParentID: parents[0].ID, Username: "rina2019", DisplayName: "Rina Santoso",
			Grade: 1, SchoolName: "SDN 1 Jakarta", XPTotal: 200, Level: 1, Coins: 50,
			SubStatus: models.SubNone,
		},
		{
			ParentID: parents[1].ID, Username: "dewi2016", DisplayName: "Dewi Lestari",
			Grade: 3, SchoolName: "SD Harapan Bangsa", XPTotal: 3400, Level: 12, Coins: 980,
			SubPlanID: &plans[2].ID, SubStatus: models.SubExpired, SubValidUntil: &expiredAt,
		},
	}
	for i := range students {
		mustCreate(r.Students.Create(ctx, &students[i]))
	}

	// childrenIds stays the authoritative list on the parent
	parents[0].ChildrenIDs = datatypes.NewJSONSlice([]uint{students[0].ID, students[1].ID})
	mustCreate(r.Parents.Update(ctx, &parents[0]))
	parents[1].ChildrenIDs = datatypes.NewJSONSlice([]uint{students[2].ID})
	mustCreate(r.Parents.Update(ctx, &parents[1]))

	paidAt := time.Now().AddDate(0, 0, -3)
	payments := []models.Payment{
		{OrderID: uuid.NewString(), ParentID: parents[0].ID, StudentID: students[0].ID, Amount: 50000, Status: models.PaymentPaid, PlanPurchased: "Premium Monthly", PaidAt: &paidAt},
		{OrderID: uuid.NewString(), ParentID: parents[1].ID, StudentID: students[2].ID, Amount: 500000, Status: models.PaymentPaid, PlanPurchased: "Premium Yearly", PaidAt: &paidAt},
		{OrderID: uuid.NewString(), ParentID: parents[1].ID, StudentID: students[2].ID, Amount: 500000, Status: models.PaymentPending, PlanPurchased: "Premium Yearly"},
	}
	for i := range payments {
		mustCreate(r.Payments.Create(ctx, &payments[i]))
	}

	inventories := []models.StudentInventory{
		{StudentID: students[0].ID, ItemID: items[0].ID, AcquiredAt: time.Now().AddDate(0, 0, -80), Item: datatypes.NewJSONType(items[0])},
		{StudentID: students[0].ID, ItemID: items[1].ID, AcquiredAt: time.Now().AddDate(0, 0, -60), Item: datatypes.NewJSONType(items[1])},
		{StudentID: students[2].ID, ItemID: items[3].ID, AcquiredAt: time.Now().AddDate(0, 0, -50), Item: datatypes.NewJSONType(items[3])},
	}
	for i := range inventories {
		mustCreate(r.Inventories.Create(ctx, &inventories[i]))
	}

	activities := []models.Activity{
		{Actor: "Budi Santoso", Action: "mendaftar sebagai orang tua"},
		{Actor: "Siti Nurhaliza", Action: "membeli paket tahunan senilai Rp 500.000"},
		{Actor: "Adi Santoso", Action: "selesai menjawab 10 soal hari ini"},
	}
	for i := range activities {
		mustCreate(r.Activities.Create(ctx, &activities[i]))
	}

	log.Println("Seed data loaded.")
}

func mustCreate(err error) {
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
