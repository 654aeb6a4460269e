package userController

import (
	"iiacademy/database"
	"iiacademy/middleware"
	"iiacademy/models"
	userValidator "iiacademy/validators/userValidator"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's own account. The password hash never
// serializes (json:"-" on the model).
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.
		Preload("EnrolledCourses").
		Preload("Payment").
		First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

// UpdateProfile updates the caller's name and/or phone number
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.PhoneNumber != nil {
		updates["phone_number"] = *reqData.PhoneNumber
	}

	// Column-level update so the password field is never touched, which
	// keeps unrelated saves from ever re-hashing.
	if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", nil)
}

// DeleteAccount removes the caller's own account. Hard delete so the
// email can be registered again.
func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&user).Error; err != nil {
		log.Printf("Error deleting account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully.", nil)
}

// DeleteUserByID lets an administrator remove another account. Deleting
// yourself through the admin route is refused; use the profile route.
func DeleteUserByID(c *fiber.Ctx) error {
	callerID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	if uint(targetID) == callerID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Refusing to delete own admin account via this route!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, uint(targetID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&user).Error; err != nil {
		log.Printf("Error deleting user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// ChangeUserRole is the admin-only elevation path. Registration never
// honors a client-supplied role; this endpoint is the only way to mint
// an administrator.
func ChangeUserRole(c *fiber.Ctx) error {
	targetID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedRole").(*userValidator.ChangeRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, uint(targetID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", reqData.Role).Error; err != nil {
		log.Printf("Error updating role for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully.", fiber.Map{
		"userId": user.ID,
		"role":   reqData.Role,
	})
}
