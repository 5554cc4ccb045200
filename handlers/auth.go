package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/auth"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/storage"
)

// AuthHandler handles authentication and profile requests
type AuthHandler struct {
	users      UserStore
	jwtService *auth.JWTService
	googleAuth GoogleVerifier
	cvStore    storage.CVStore
	cvReader   *CVReader
}

// NewAuthHandler creates a new auth handler. cvStore may be nil, which
// disables CV uploads.
func NewAuthHandler(
	users UserStore,
	jwtService *auth.JWTService,
	googleAuth GoogleVerifier,
	cvStore storage.CVStore,
	cvReader *CVReader,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		googleAuth: googleAuth,
		cvStore:    cvStore,
		cvReader:   cvReader,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to process registration", "")
		return
	}

	user := &models.User{
		Email:    storage.NormalizeEmail(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Password: hashedPassword,
		Provider: models.ProviderEmail,
		Skills:   []string{},
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			respondError(c, http.StatusConflict, "User already exists", "")
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		respondError(c, http.StatusInternalServerError, "Registration failed", "")
		return
	}

	h.respondWithToken(c, http.StatusCreated, user, "Registration successful")
	log.Printf("[AuthHandler] User registered: %s", user.Email)
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), storage.NormalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			log.Printf("[AuthHandler] Failed to load user: %v", err)
		}
		respondError(c, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	if user.Provider == models.ProviderGoogle && user.Password == "" {
		respondError(c, http.StatusUnauthorized, "This account uses Google Sign-In. Please login with Google.", "")
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	h.respondWithToken(c, http.StatusOK, user, "Login successful")
	log.Printf("[AuthHandler] User logged in: %s", user.Email)
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	googleUser, err := h.googleAuth.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		respondError(c, http.StatusUnauthorized, "Invalid Google token", err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.GetUserByGoogleID(ctx, googleUser.GoogleID)
	if errors.Is(err, storage.ErrUserNotFound) {
		user, err = h.users.GetUserByEmail(ctx, storage.NormalizeEmail(googleUser.Email))
		if err == nil && user.GoogleID == "" {
			// link the existing email account
			if err := h.users.UpdateUser(ctx, user.Email, map[string]interface{}{
				"googleId": googleUser.GoogleID,
			}); err != nil {
				log.Printf("[AuthHandler] Failed to link Google account: %v", err)
			}
			user.GoogleID = googleUser.GoogleID
		}
	}

	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		user = &models.User{
			Email:    storage.NormalizeEmail(googleUser.Email),
			Name:     googleUser.Name,
			Provider: models.ProviderGoogle,
			GoogleID: googleUser.GoogleID,
			Skills:   []string{},
		}
		if err := h.users.CreateUser(ctx, user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to create account", "")
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	case err != nil:
		log.Printf("[AuthHandler] Failed to load Google user: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load account", "")
		return
	}

	h.respondWithToken(c, http.StatusOK, user, "Login successful")
	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile, skills and match preferences
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	user, ok := h.loadUser(c, claims.Email)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}

// UpdateProfile updates the current user's profile
// @Summary Update user profile
// @Description Update the authenticated user's name, skills or match preferences
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Skills != nil {
		req.Skills = normalizeSkills(req.Skills)
	}

	if err := h.users.UpdateUserProfile(c.Request.Context(), claims.Email, req); err != nil {
		log.Printf("[AuthHandler] Failed to update profile: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}

	user, ok := h.loadUser(c, claims.Email)
	if !ok {
		return
	}

	log.Printf("[AuthHandler] Profile updated: %s", claims.Email)
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}

// UploadCV uploads a CV file and stores the skills extracted from it
// @Summary Upload CV
// @Description Upload a CV file (PDF, DOC, DOCX, TXT). Its skills replace the profile's skill list.
// @Tags Auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cv_file formData file true "CV file (PDF, DOC, DOCX, TXT)"
// @Success 200 {object} models.CVUploadResponse "CV uploaded successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Skill extraction failed"
// @Failure 503 {object} models.ErrorResponse "CV storage not configured"
// @Router /auth/cv [post]
func (h *AuthHandler) UploadCV(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	if h.cvStore == nil {
		respondError(c, http.StatusServiceUnavailable, "CV storage is not configured", "")
		return
	}

	header, err := c.FormFile("cv_file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "CV file is required", err.Error())
		return
	}
	data, err := readUpload(header)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read CV file", err.Error())
		return
	}

	ctx := c.Request.Context()
	skills, err := h.cvReader.SkillsFromFile(ctx, header.Filename, data)
	if err != nil {
		log.Printf("[AuthHandler] Skill extraction failed for %s: %v", claims.Email, err)
		respondError(c, cvErrorStatus(err), "Failed to extract skills from CV", err.Error())
		return
	}

	cvURL, err := h.cvStore.Upload(ctx, claims.Email, header.Filename, data)
	if err != nil {
		log.Printf("[AuthHandler] Failed to upload CV: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload CV", "")
		return
	}

	if err := h.users.UpdateUserCV(ctx, claims.Email, cvURL, skills); err != nil {
		log.Printf("[AuthHandler] Failed to update CV reference: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to save CV reference", "")
		return
	}

	log.Printf("[AuthHandler] CV uploaded for user %s with %d skills", claims.Email, len(skills))
	c.JSON(http.StatusOK, models.CVUploadResponse{
		CVUrl:   cvURL,
		Skills:  skills,
		Message: "CV uploaded successfully",
	})
}

func (h *AuthHandler) loadUser(c *gin.Context, email string) (*models.User, bool) {
	user, err := h.users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", "")
		} else {
			log.Printf("[AuthHandler] Failed to load user %s: %v", email, err)
			respondError(c, http.StatusInternalServerError, "Failed to load user", "")
		}
		return nil, false
	}
	return user, true
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	c.JSON(status, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: message,
	})
}
