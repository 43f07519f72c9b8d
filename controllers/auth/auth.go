package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"belajaradmin/middleware"
	"belajaradmin/repository"
	"belajaradmin/store"

	authValidator "belajaradmin/validators/auth"
)

// Login authenticates an admin and issues a bearer token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	admins, err := store.Admins.List(c.Context(), repository.Filter{"email": reqData.Email})
	if err != nil || len(admins) == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	admin := admins[0]
	if !admin.IsActive || admin.IsDeleted {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin account is disabled!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.FullName, admin.Role, admin.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := store.Admins.Update(c.Context(), &admin); err != nil {
		log.Printf("Error updating last login for %s: %v", admin.Email, err)
	}

	admin.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// Me returns the authenticated admin profile
func Me(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	admin, err := store.Admins.GetByID(c.Context(), adminID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Admin not found!", nil)
	}

	admin.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", admin)
}
