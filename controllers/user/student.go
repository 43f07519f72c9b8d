package userController

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"
	"belajaradmin/utils"

	userValidator "belajaradmin/validators/user"
)

// studentView wraps a student with the derived remainingDays field the
// dashboard renders next to the subscription badge.
type studentView struct {
	models.Student
	RemainingDays int `json:"remainingDays"`
}

func toStudentView(student models.Student) studentView {
	return studentView{Student: student, RemainingDays: utils.RemainingDays(student.SubValidUntil)}
}

// ListStudents lists students, optionally filtered by parent
func ListStudents(c *fiber.Ctx) error {
	var filter repository.Filter
	if parentID, ok := c.Locals("filterParentID").(uint); ok {
		filter = repository.Filter{"parent_id": strconv.FormatUint(uint64(parentID), 10)}
	}

	students, err := store.Students.List(c.Context(), filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	views := make([]studentView, 0, len(students))
	for _, student := range students {
		views = append(views, toStudentView(student))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", views)
}

// GetStudent returns a single student profile
func GetStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	student, err := store.Students.GetByID(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", toStudentView(student))
}

// CreateStudent creates a student under an existing parent
func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*userValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	parent, err := store.Parents.GetByID(c.Context(), reqData.ParentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	// Check if username already exists
	existing, err := store.Students.List(c.Context(), repository.Filter{"username": reqData.Username})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}
	if len(existing) > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	student := models.Student{
		ParentID:    reqData.ParentID,
		Username:    reqData.Username,
		DisplayName: reqData.DisplayName,
		Grade:       reqData.Grade,
		SchoolName:  reqData.SchoolName,
		Level:       1,
		SubStatus:   models.SubNone,
	}
	applyStudentFields(&student, reqData)

	if err := store.Students.Create(c.Context(), &student); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	// Replace the slice instead of appending in place: the backing array is
	// shared with the cached parent, which must stay intact if Update fails.
	children := make(datatypes.JSONSlice[uint], 0, len(parent.ChildrenIDs)+1)
	children = append(children, parent.ChildrenIDs...)
	children = append(children, student.ID)
	parent.ChildrenIDs = children
	if err := store.Parents.Update(c.Context(), &parent); err != nil {
		log.Printf("Failed to attach student %d to parent %d: %v", student.ID, parent.ID, err)
	}

	store.LogActivity(adminName(c), "menambahkan siswa "+student.DisplayName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student created successfully!", toStudentView(student))
}

// UpdateStudent merges the provided fields into an existing student.
// Subscription status is stored as given; no automatic transitions happen here.
func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	reqData, ok := c.Locals("validatedStudentUpdate").(*userValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := store.Students.GetByID(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	if reqData.Username != "" && reqData.Username != student.Username {
		existing, err := store.Students.List(c.Context(), repository.Filter{"username": reqData.Username})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
		}
		if len(existing) > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
		}
		student.Username = reqData.Username
	}

	if reqData.DisplayName != "" {
		student.DisplayName = reqData.DisplayName
	}
	if reqData.Grade != 0 {
		student.Grade = reqData.Grade
	}
	if reqData.SchoolName != "" {
		student.SchoolName = reqData.SchoolName
	}
	applyStudentFields(&student, reqData)

	if err := store.Students.Update(c.Context(), &student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", toStudentView(student))
}

// DeleteStudent removes a student and detaches it from its parent
func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	student, err := store.Students.GetByID(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	if err := store.Students.Remove(c.Context(), studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	if parent, err := store.Parents.GetByID(c.Context(), student.ParentID); err == nil {
		// Filter into a fresh slice; reslicing ChildrenIDs would mutate the
		// backing array shared with the cache and the stored row.
		kept := make(datatypes.JSONSlice[uint], 0, len(parent.ChildrenIDs))
		for _, childID := range parent.ChildrenIDs {
			if childID != studentID {
				kept = append(kept, childID)
			}
		}
		parent.ChildrenIDs = kept
		if err := store.Parents.Update(c.Context(), &parent); err != nil {
			log.Printf("Failed to detach student %d from parent %d: %v", studentID, parent.ID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}

// ListInventory lists the items a student owns
func ListInventory(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	if _, err := store.Students.GetByID(c.Context(), studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inventory!", nil)
	}

	items, err := store.Inventories.List(c.Context(), repository.Filter{"student_id": strconv.FormatUint(uint64(studentID), 10)})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inventory!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inventory fetched successfully!", items)
}

// GrantItem gives a shop item to a student, snapshotting the item so the
// inventory row survives later edits to the shop catalogue
func GrantItem(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	reqData, ok := c.Locals("validatedGrant").(*userValidator.GrantItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := store.Students.GetByID(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant item!", nil)
	}

	item, err := store.ShopItems.GetByID(c.Context(), reqData.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant item!", nil)
	}

	owned, err := store.Inventories.List(c.Context(), repository.Filter{"student_id": strconv.FormatUint(uint64(studentID), 10)})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant item!", nil)
	}
	for _, row := range owned {
		if row.ItemID == item.ID {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student already owns this item!", nil)
		}
	}

	entry := models.StudentInventory{
		StudentID:  studentID,
		ItemID:     item.ID,
		AcquiredAt: time.Now(),
		Item:       datatypes.NewJSONType(item),
	}

	if err := store.Inventories.Create(c.Context(), &entry); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant item!", nil)
	}

	store.LogActivity(adminName(c), "memberikan item "+item.Name+" kepada "+student.DisplayName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item granted successfully!", entry)
}

// applyStudentFields copies optional stat and subscription fields when present.
func applyStudentFields(student *models.Student, reqData *userValidator.StudentRequest) {
	if reqData.XPTotal != nil {
		student.XPTotal = *reqData.XPTotal
	}
	if reqData.Level != nil {
		student.Level = *reqData.Level
	}
	if reqData.Coins != nil {
		student.Coins = *reqData.Coins
	}
	if reqData.AvatarEquipped != nil {
		student.AvatarEquipped = datatypes.NewJSONType(reqData.AvatarEquipped)
	}
	if reqData.SubPlanID != nil {
		student.SubPlanID = reqData.SubPlanID
	}
	if reqData.SubStatus != "" {
		student.SubStatus = reqData.SubStatus
	}
	if reqData.SubValidUntil != nil {
		validUntil := time.UnixMilli(*reqData.SubValidUntil)
		student.SubValidUntil = &validUntil
	}
}
