package dashboardController

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/store"
)

const recentActivityLimit = 10

type dashboardTotals struct {
	Parents             int     `json:"parents"`
	Students            int     `json:"students"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	Revenue             float64 `json:"revenue"`
}

type dashboardStats struct {
	Totals           dashboardTotals   `json:"totals"`
	RecentActivities []models.Activity `json:"recentActivities"`
}

// Stats returns the landing page counters and the recent activity feed
func Stats(c *fiber.Ctx) error {
	parents, err := store.Parents.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	students, err := store.Students.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	payments, err := store.Payments.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	activities, err := store.Activities.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	totals := dashboardTotals{Parents: len(parents), Students: len(students)}
	for _, student := range students {
		if student.SubStatus == models.SubActive {
			totals.ActiveSubscriptions++
		}
	}
	for _, payment := range payments {
		if payment.Status == models.PaymentPaid {
			totals.Revenue += payment.Amount
		}
	}

	// Newest first regardless of the repository's ordering
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", dashboardStats{
		Totals:           totals,
		RecentActivities: activities,
	})
}

type revenueRow struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Payments int     `json:"payments"`
}

// RevenueReport aggregates paid payments into monthly rows
func RevenueReport(c *fiber.Ctx) error {
	payments, err := store.Payments.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch revenue report!", nil)
	}

	byMonth := make(map[string]*revenueRow)
	for _, payment := range payments {
		if payment.Status != models.PaymentPaid || payment.PaidAt == nil {
			continue
		}
		month := payment.PaidAt.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			row = &revenueRow{Month: month}
			byMonth[month] = row
		}
		row.Revenue += payment.Amount
		row.Payments++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue report fetched successfully!", sortedMonthly(byMonth))
}

type growthRow struct {
	Month       string `json:"month"` // YYYY-MM
	NewStudents int    `json:"newStudents"`
}

// UserGrowthReport counts new student registrations per month
func UserGrowthReport(c *fiber.Ctx) error {
	students, err := store.Students.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user growth report!", nil)
	}

	byMonth := make(map[string]*growthRow)
	for _, student := range students {
		month := student.CreatedAt.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			row = &growthRow{Month: month}
			byMonth[month] = row
		}
		row.NewStudents++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User growth report fetched successfully!", sortedMonthly(byMonth))
}

type topicStats struct {
	TopicID       uint    `json:"topicId"`
	Name          string  `json:"name"`
	Subject       string  `json:"subject"`
	GradeLevel    int     `json:"gradeLevel"`
	QuestionCount int     `json:"questionCount"`
	AvgDifficulty float64 `json:"avgDifficulty"`
}

type academicReport struct {
	Topics           []topicStats      `json:"topics"`
	HardestQuestions []models.Question `json:"hardestQuestions"`
}

const hardestQuestionLimit = 5

// AcademicReport summarises question coverage per topic and surfaces the
// hardest questions in the bank
func AcademicReport(c *fiber.Ctx) error {
	topics, err := store.Topics.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch academic report!", nil)
	}

	questions, err := store.Questions.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch academic report!", nil)
	}

	counts := make(map[uint]int)
	difficultySums := make(map[uint]int)
	for _, question := range questions {
		counts[question.TopicID]++
		difficultySums[question.TopicID] += question.Difficulty
	}

	rows := make([]topicStats, 0, len(topics))
	for _, topic := range topics {
		row := topicStats{
			TopicID:       topic.ID,
			Name:          topic.Name,
			Subject:       topic.Subject,
			GradeLevel:    topic.GradeLevel,
			QuestionCount: counts[topic.ID],
		}
		if row.QuestionCount > 0 {
			row.AvgDifficulty = float64(difficultySums[topic.ID]) / float64(row.QuestionCount)
		}
		rows = append(rows, row)
	}

	sort.Slice(questions, func(i, j int) bool {
		if questions[i].Difficulty != questions[j].Difficulty {
			return questions[i].Difficulty > questions[j].Difficulty
		}
		return questions[i].ID < questions[j].ID
	})
	if len(questions) > hardestQuestionLimit {
		questions = questions[:hardestQuestionLimit]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Academic report fetched successfully!", academicReport{
		Topics:           rows,
		HardestQuestions: questions,
	})
}

// sortedMonthly flattens a month-keyed map into rows ordered oldest first.
func sortedMonthly[T any](byMonth map[string]*T) []T {
	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	rows := make([]T, 0, len(months))
	for _, month := range months {
		rows = append(rows, *byMonth[month])
	}
	return rows
}
