package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishlife/parish_community_app/internal/core/domain"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/middleware"
)

// authHandler handles HTTP requests for authentication and registration.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{authService: as, tokenService: ts}
}

// registerAuthRoutes registers the public (unauthenticated) auth routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Token)
	rateLimited := middleware.RateLimit(newAuthRateLimiter())

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", rateLimited, h.login)
		auth.POST("/register-start", rateLimited, h.registerStart)
		auth.POST("/register-verify-email", rateLimited, h.registerVerifyEmail)
		auth.POST("/register-complete", h.registerComplete)
		auth.POST("/register-resend-email", rateLimited, h.registerResendEmail)
		auth.POST("/send-login-otp", rateLimited, h.sendLoginOTP)
		auth.POST("/verify-otp", rateLimited, h.verifyOTP)
		auth.POST("/send-reset-code", rateLimited, h.sendResetCode)
		auth.POST("/refresh", h.refresh)
	}
}

// registerAuthProtectedRoutes registers auth routes that require a valid
// access token.
func registerAuthProtectedRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade, ts portssvc.TokenSvcFacade) {
	h := newAuthHandler(as, ts)

	auth := rg.Group("/auth")
	{
		auth.POST("/change-password", h.changePassword)
		auth.GET("/validate-token", h.validateToken)
		auth.POST("/logout", h.logout)
		auth.POST("/validate-user-organization", h.validateUserOrganization)
		auth.POST("/register-user-organization", h.registerUserOrganization)
	}
}

// login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and returns an access/refresh token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 403 {object} map[string]string "Account disabled"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.String("user_id", resp.User.UserID))
	c.JSON(http.StatusOK, resp)
}

// registerStart godoc
// @Summary Start registration
// @Description Opens a registration session and emails a verification code
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   registration body dto.RegisterStartRequest true "Email and password"
// @Success 200 {object} dto.RegisterStartResponse
// @Failure 400 {object} map[string]string "Email already registered or invalid input"
// @Router /auth/register-start [post]
func (h *authHandler) registerStart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	registrationID, err := h.authService.RegisterStart(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to start registration")
		return
	}

	c.JSON(http.StatusOK, dto.RegisterStartResponse{
		Success:        true,
		Message:        "Verification code sent",
		RegistrationID: registrationID,
	})
}

// registerVerifyEmail godoc
// @Summary Verify registration email
// @Description Consumes the emailed code and marks the session verified
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   verification body dto.RegisterVerifyEmailRequest true "Registration id and code"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid or expired code"
// @Failure 404 {object} map[string]string "Registration session not found"
// @Router /auth/register-verify-email [post]
func (h *authHandler) registerVerifyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterVerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.RegisterVerifyEmail(c.Request.Context(), req.RegistrationID, req.Code); err != nil {
		respondServiceError(c, logger, err, "Failed to verify email")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Email verified"})
}

// registerComplete godoc
// @Summary Complete registration
// @Description Creates the user account from a verified session and returns tokens
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   completion body dto.RegisterCompleteRequest true "Registration id, username and name"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} map[string]string "Session not verified or username taken"
// @Failure 404 {object} map[string]string "Registration session not found"
// @Router /auth/register-complete [post]
func (h *authHandler) registerComplete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pair, err := h.authService.RegisterComplete(c.Request.Context(), req.RegistrationID, req.Username, req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete registration")
		return
	}

	logger.Info("Registration completed", slog.String("registration_id", req.RegistrationID))
	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Success:      true,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// registerResendEmail godoc
// @Summary Resend registration code
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   resend body dto.RegisterResendRequest true "Registration id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Session expired or already verified"
// @Failure 404 {object} map[string]string "Registration session not found"
// @Router /auth/register-resend-email [post]
func (h *authHandler) registerResendEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.RegisterResendEmail(c.Request.Context(), req.RegistrationID); err != nil {
		respondServiceError(c, logger, err, "Failed to resend code")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Verification code sent"})
}

// sendLoginOTP godoc
// @Summary Send a login code
// @Description Sends a one-time login code by email or SMS
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.SendOTPRequest true "Email and delivery method"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "No phone on file for SMS"
// @Failure 404 {object} map[string]string "No account for email"
// @Router /auth/send-login-otp [post]
func (h *authHandler) sendLoginOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.SendLoginOTP(c.Request.Context(), req.Email, domain.OTPMethod(req.Method)); err != nil {
		respondServiceError(c, logger, err, "Failed to send login code")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Login code sent"})
}

// verifyOTP godoc
// @Summary Log in with a one-time code
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} map[string]string "Invalid or expired code"
// @Failure 404 {object} map[string]string "No account for email"
// @Router /auth/verify-otp [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pair, err := h.authService.VerifyLoginOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify code")
		return
	}
	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Success:      true,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the current password, sets the new one and revokes all sessions
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Current password incorrect"
// @Security AccessToken
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Failed to change password")
		return
	}

	logger.Info("Password changed")
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Password changed"})
}

// sendResetCode godoc
// @Summary Request a password reset code
// @Description Always responds 200; the code is emailed only when the account exists
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.SendResetCodeRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/send-reset-code [post]
func (h *authHandler) sendResetCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.SendResetCode(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, logger, err, "Failed to send reset code")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "If the account exists, a reset code was sent"})
}

// validateToken godoc
// @Summary Validate the presented access token
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.ValidateTokenResponse
// @Failure 401 {object} map[string]string "Invalid token"
// @Security AccessToken
// @Router /auth/validate-token [get]
func (h *authHandler) validateToken(c *gin.Context) {
	// AuthMiddleware has already verified the token; reaching here means
	// it is valid.
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ValidateTokenResponse{Valid: true, UserID: userID})
}

// refresh godoc
// @Summary Rotate a refresh token
// @Description Exchanges a refresh token for a new pair; the old token is revoked
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 401 {object} map[string]string "Invalid, revoked or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token required"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to refresh tokens")
		return
	}
	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Success:      true,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// logout godoc
// @Summary Log out everywhere
// @Description Revokes every outstanding refresh token of the caller
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.MessageResponse
// @Security AccessToken
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to log out")
		return
	}
	logger.Info("User logged out")
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Logged out"})
}

// validateUserOrganization godoc
// @Summary Check organization membership
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.OrganizationMembershipRequest true "Organization id"
// @Success 200 {object} dto.ValidateUserOrganizationResponse
// @Security AccessToken
// @Router /auth/validate-user-organization [post]
func (h *authHandler) validateUserOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.OrganizationMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	valid, err := h.authService.ValidateUserOrganization(c.Request.Context(), userID, req.OrganizationID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check membership")
		return
	}
	msg := "User is not a member of the organization"
	if valid {
		msg = "User is a member of the organization"
	}
	c.JSON(http.StatusOK, dto.ValidateUserOrganizationResponse{Valid: valid, Message: msg})
}

// registerUserOrganization godoc
// @Summary Register organization membership
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.OrganizationMembershipRequest true "Organization id"
// @Success 200 {object} dto.MessageResponse
// @Security AccessToken
// @Router /auth/register-user-organization [post]
func (h *authHandler) registerUserOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.OrganizationMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.RegisterUserOrganization(c.Request.Context(), userID, req.OrganizationID); err != nil {
		respondServiceError(c, logger, err, "Failed to register membership")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Membership registered"})
}
