package authController

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupRequest is validated by the auth validator before reaching here.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,min=10,max=15"`
	Password string `json:"password" validate:"required,min=8"`
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if mobile already exists
	if err := db.Where("mobile = ?", reqData.Mobile).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mobile number is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile   string `json:"mobile"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Password == "" || (reqData.Email == "" && reqData.Mobile == "") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email or mobile and password are required!", nil)
	}

	user, err := findUserByEmailOrMobile(reqData.Email, reqData.Mobile)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if user.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact support!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		now := time.Now()
		user.FailedLoginAttempts++
		user.LastFailedLogin = &now
		if user.FailedLoginAttempts >= 5 {
			user.IsBlocked = true
		}
		database.Database.Db.Save(user)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	user.FailedLoginAttempts = 0
	user.LastLogin = time.Now()
	database.Database.Db.Save(user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Mobile)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// SendOTP issues a verification OTP for an unverified email or mobile.
func SendOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, err := findUserByEmailOrMobile(reqData.Email, reqData.Mobile)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or mobile!", nil)
	}

	if reqData.Email != "" && user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Email already verified!", nil)
	}
	if reqData.Email == "" && user.IsMobileVerified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Mobile already verified!", nil)
	}

	if err := issueOTP(user, reqData.Email, reqData.Mobile, "Email/Mobile Verification OTP"); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// VerifyOTP consumes a verification OTP and flips the matching
// verification flag.
func VerifyOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
		Code   string `json:"code"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, errResp := consumeOTP(c, reqData.Email, reqData.Mobile, reqData.Code)
	if errResp != nil {
		return errResp()
	}

	if reqData.Email != "" {
		user.IsEmailVerified = true
	} else {
		user.IsMobileVerified = true
	}

	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user verification status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully!", nil)
}

// LoginSendOTP starts a passwordless login by sending a login OTP.
func LoginSendOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, err := findUserByEmailOrMobile(reqData.Email, reqData.Mobile)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or mobile!", nil)
	}

	if user.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact support!", nil)
	}

	if err := issueOTP(user, reqData.Email, reqData.Mobile, "Login OTP"); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// LoginVerifyOTP finishes a passwordless login and returns a JWT.
func LoginVerifyOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
		Code   string `json:"code"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, errResp := consumeOTP(c, reqData.Email, reqData.Mobile, reqData.Code)
	if errResp != nil {
		return errResp()
	}

	user.LastLogin = time.Now()
	database.Database.Db.Save(user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Mobile)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// ForgotPasswordSendOTP issues a password-reset OTP.
func ForgotPasswordSendOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, err := findUserByEmailOrMobile(reqData.Email, reqData.Mobile)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or mobile!", nil)
	}

	if err := issueOTP(user, reqData.Email, reqData.Mobile, "Forgot Password OTP"); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// ResetPassword consumes a reset OTP and stores the new password.
func ResetPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile      string `json:"mobile"`
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if len(reqData.NewPassword) < 8 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password must be at least 8 characters!", nil)
	}

	user, errResp := consumeOTP(c, reqData.Email, reqData.Mobile, reqData.Code)
	if errResp != nil {
		return errResp()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully!", nil)
}

// findUserByEmailOrMobile prefers email when both are present.
func findUserByEmailOrMobile(email, mobile string) (*models.User, error) {
	var user models.User
	var result *gorm.DB

	if email != "" {
		result = database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&user)
	} else {
		result = database.Database.Db.Where("mobile = ? AND is_deleted = ?", mobile, false).First(&user)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// issueOTP creates and delivers a fresh OTP over SMS or email.
func issueOTP(user *models.User, email, mobile, description string) error {
	otp := utils.GenerateOTP()
	expiresAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	otpRecord := models.OTP{
		UserID:      user.ID,
		Email:       email,
		Mobile:      mobile,
		Code:        otp,
		ExpiresAt:   expiresAt,
		Description: description,
	}

	if mobile != "" {
		if err := utils.SendOTPToMobile(mobile, otp); err != nil {
			return err
		}
	}
	if email != "" {
		if err := utils.SendOTPEmail(otp, email); err != nil {
			return err
		}
	}

	return database.Database.Db.Create(&otpRecord).Error
}

// consumeOTP resolves the user and their unused OTP, checks expiry and
// marks the code used. On failure it returns a response func carrying
// the right status for the caller to return.
func consumeOTP(c *fiber.Ctx, email, mobile, code string) (*models.User, func() error) {
	fail := func(status int, message string) func() error {
		return func() error { return middleware.JsonResponse(c, status, false, message, nil) }
	}

	user, err := findUserByEmailOrMobile(email, mobile)
	if err != nil {
		return nil, fail(fiber.StatusUnauthorized, "User not found!")
	}

	var otpRecord models.OTP
	var result *gorm.DB
	if email != "" {
		result = database.Database.Db.Where("email = ? AND code = ? AND is_used = ? AND is_deleted = ?", email, code, false, false).First(&otpRecord)
	} else {
		result = database.Database.Db.Where("mobile = ? AND code = ? AND is_used = ? AND is_deleted = ?", mobile, code, false, false).First(&otpRecord)
	}
	if result.Error != nil {
		return nil, fail(fiber.StatusUnauthorized, "Invalid OTP or OTP expired!")
	}

	if otpRecord.ExpiresAt.Before(time.Now()) {
		return nil, fail(fiber.StatusUnauthorized, "OTP has expired!")
	}

	otpRecord.IsUsed = true
	if err := database.Database.Db.Save(&otpRecord).Error; err != nil {
		return nil, fail(fiber.StatusInternalServerError, "Failed to update OTP status!")
	}

	return user, nil
}
