package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	accountapp "github.com/muhammadheryan/account-service/application/account"
	authapp "github.com/muhammadheryan/account-service/application/auth"
	"github.com/muhammadheryan/account-service/application/identifier"
	passwordapp "github.com/muhammadheryan/account-service/application/password"
	tokenapp "github.com/muhammadheryan/account-service/application/token"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	utilsContext "github.com/muhammadheryan/account-service/utils/context"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	validatorx "github.com/muhammadheryan/account-service/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const photoField = "photo"

type Options struct {
	// CollapseLoginErrors reports every /login rejection as LOGIN_FAILED.
	CollapseLoginErrors bool
	MaxPhotoBytes       int64
}

type RestHandler struct {
	AccountApp  accountapp.AccountApp
	AuthApp     authapp.AuthApp
	TokenApp    tokenapp.TokenApp
	PasswordApp passwordapp.PasswordApp
	opts        Options
}

func NewTransport(accountApp accountapp.AccountApp, authApp authapp.AuthApp, tokenApp tokenapp.TokenApp, passwordApp passwordapp.PasswordApp, opts Options) http.Handler {
	if err := validatorx.RegisterString("username", identifier.IsValidUsername); err != nil {
		logger.Fatal("err register username validator", zap.Error(err))
	}

	mux := mux.NewRouter()

	rh := &RestHandler{
		AccountApp:  accountApp,
		AuthApp:     authApp,
		TokenApp:    tokenApp,
		PasswordApp: passwordApp,
		opts:        opts,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/signup", rh.SignUp).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/login/refresh", rh.Refresh).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc("/password-reset", rh.ResetPassword).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/verify", rh.VerifyCode).Methods(http.MethodPost)
	mux.HandleFunc("/new-verify", rh.ResendCode).Methods(http.MethodPost)
	mux.HandleFunc("/change-user", rh.CompleteProfile).Methods(http.MethodPost)
	mux.HandleFunc("/photo-step", rh.SetPhoto).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(tokenApp))

	return mux
}

// decode reads a JSON body into req and validates it.
func decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		var verrs gpvalidator.ValidationErrors
		if stderrors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "username" {
					return errors.SetCustomError(constant.ErrInvalidUsername)
				}
			}
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// SignUp handler
// @Summary Sign up
// @Description Create an account from an email address or phone number and send a verification code
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body model.SignUpRequest true "Sign up Request"
// @Success 200 {object} model.SignUpResponse
// @Failure 400 {object} Response
// @Router /signup [post]
func (s *RestHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.SignUp(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyCode handler
// @Summary Verify code
// @Description Confirm the verification code sent to the account's contact
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VerifyRequest true "Verify Request"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} Response
// @Router /verify [post]
func (s *RestHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	var req model.VerifyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.VerifyCode(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResendCode handler
// @Summary Resend code
// @Description Issue a new verification code, superseding the previous one
// @Tags Onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ResendResponse
// @Failure 429 {object} Response
// @Router /new-verify [post]
func (s *RestHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.AccountApp.ResendCode(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteProfile handler
// @Summary Complete profile
// @Description Set names, username and password of a verified account
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CompleteProfileRequest true "Profile Request"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} Response
// @Router /change-user [post]
func (s *RestHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	var req model.CompleteProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AccountApp.CompleteProfile(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetPhoto handler
// @Summary Upload photo
// @Description Upload a profile photo (jpg, jpeg, png, heic, heif)
// @Tags Onboarding
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} Response
// @Router /photo-step [post]
func (s *RestHandler) SetPhoto(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	if s.opts.MaxPhotoBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxPhotoBytes+1<<20)
	}
	file, header, err := r.FormFile(photoField)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPhoto))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPhoto))
		return
	}

	res, err := s.AccountApp.SetPhoto(r.Context(), accountID, &model.PhotoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Me handler
// @Summary Current profile
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} Response
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.AccountApp.GetProfile(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Login with username, email or phone and receive a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, s.loginError(err))
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) loginError(err error) error {
	if !s.opts.CollapseLoginErrors {
		return err
	}
	if errors.IsType(err, constant.ErrIncompleteRegistration) ||
		errors.IsType(err, constant.ErrInvalidCredentials) ||
		errors.IsType(err, constant.ErrAccountNotFound) {
		return errors.SetCustomError(constant.ErrLoginFailed)
	}
	return err
}

// Refresh handler
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh Request"
// @Success 200 {object} model.RefreshResponse
// @Failure 401 {object} Response
// @Router /login/refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TokenApp.Refresh(r.Context(), req.Refresh)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LogoutRequest true "Logout Request"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req model.LogoutRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.TokenApp.Revoke(r.Context(), req.Refresh); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ForgotPassword handler
// @Summary Forgot password
// @Description Send a reset code to the email or phone of a registered account
// @Tags Password
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} model.ForgotPasswordResponse
// @Failure 404 {object} Response
// @Router /forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PasswordApp.ForgotPassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResetPassword handler
// @Summary Reset password
// @Description Set a new password using the code sent by forgot-password
// @Tags Password
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} Response
// @Router /password-reset [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PasswordApp.ResetPassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
