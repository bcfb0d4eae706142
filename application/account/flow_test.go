package account_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	appaccount "github.com/muhammadheryan/account-service/application/account"
	appauth "github.com/muhammadheryan/account-service/application/auth"
	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/application/notification"
	apppassword "github.com/muhammadheryan/account-service/application/password"
	apptoken "github.com/muhammadheryan/account-service/application/token"
	appverification "github.com/muhammadheryan/account-service/application/verification"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/constant"
	accountappmocks "github.com/muhammadheryan/account-service/mocks/application/account"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	redisrepo "github.com/muhammadheryan/account-service/repository/redis"
	cerr "github.com/muhammadheryan/account-service/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore keeps accounts and codes in memory. It serves as account, verification and
// transaction repository for flow tests that run one request at a time.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*model.AccountEntity
	codes    []*model.VerificationCodeEntity
}

func newMemStore() *memStore {
	return &memStore{accounts: map[string]*model.AccountEntity{}}
}

func (m *memStore) BeginTx(ctx context.Context) (*sqlx.Tx, error) { return &sqlx.Tx{}, nil }
func (m *memStore) CommitTx(tx *sqlx.Tx) error                      { return nil }
func (m *memStore) RollbackTx(tx *sqlx.Tx) error                    { return nil }

func (m *memStore) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AccountEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if (data.Email != nil && a.Email != nil && *a.Email == *data.Email) ||
			(data.PhoneNumber != nil && a.PhoneNumber != nil && *a.PhoneNumber == *data.PhoneNumber) {
			return accountrepo.ErrDuplicate
		}
	}
	cp := *data
	m.accounts[data.ID] = &cp
	return nil
}

func (m *memStore) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if filter.ID != "" && a.ID != filter.ID {
			continue
		}
		if filter.Username != "" && (a.Username == nil || !strings.EqualFold(*a.Username, filter.Username)) {
			continue
		}
		if filter.Email != "" && (a.Email == nil || *a.Email != filter.Email) {
			continue
		}
		if filter.PhoneNumber != "" && (a.PhoneNumber == nil || *a.PhoneNumber != filter.PhoneNumber) {
			continue
		}
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AccountEntity, error) {
	return m.Get(ctx, &model.AccountFilter{ID: id})
}

func (m *memStore) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to constant.AuthStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok || a.AuthStatus != from {
		return false, nil
	}
	a.AuthStatus = to
	return true, nil
}

func (m *memStore) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.accounts[data.AccountID]
	a.FirstName, a.LastName = &data.FirstName, &data.LastName
	a.Username, a.PasswordHash = &data.Username, &data.PasswordHash
	return nil
}

func (m *memStore) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[id].PasswordHash = &passwordHash
	return nil
}

func (m *memStore) UpdatePhotoTx(ctx context.Context, tx *sqlx.Tx, id, photo string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[id].Photo = &photo
	return nil
}

func (m *memStore) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[id].LastLogin = &at
	return nil
}

func (m *memStore) SupersedeTx(ctx context.Context, tx *sqlx.Tx, accountID string, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.codes {
		if c.AccountID == accountID && !c.IsConfirmed && c.ExpiresAt.After(now) {
			c.ExpiresAt = now
			n++
		}
	}
	return n, nil
}

func (m *memStore) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.VerificationCodeEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *data
	m.codes = append(m.codes, &cp)
	return nil
}

func (m *memStore) GetLatestTx(ctx context.Context, tx *sqlx.Tx, accountID string) (*model.VerificationCodeEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.codes) - 1; i >= 0; i-- {
		if m.codes[i].AccountID == accountID {
			cp := *m.codes[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) ConfirmTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.codes {
		if c.ID == id {
			if c.IsConfirmed {
				return false, nil
			}
			c.IsConfirmed = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) expireLatest(accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.codes) - 1; i >= 0; i-- {
		if m.codes[i].AccountID == accountID {
			m.codes[i].ExpiresAt = time.Now().Add(-time.Second)
			return
		}
	}
}

// inbox records the last code delivered per contact.
type inbox struct {
	mu   sync.Mutex
	last map[string]string
}

func (i *inbox) Send(ctx context.Context, msg *model.VerificationMessage) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.last[msg.Contact] = msg.Code
	return nil
}

func (i *inbox) code(contact string) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.last[contact]
}

type flow struct {
	store      *memStore
	inbox      *inbox
	dispatcher notification.Dispatcher
	accounts   appaccount.AccountApp
	auth       appauth.AuthApp
	tokens     apptoken.TokenApp
	passwords  apppassword.PasswordApp
	photos     *accountappmocks.PhotoStorage
}

func newFlow(t *testing.T) *flow {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "flow-secret",
			AccessExpiration:  5 * time.Minute,
			RefreshExpiration: 24 * time.Hour,
		},
		Verification: config.VerificationConfig{
			CodeLength:         4,
			EmailCodeTTL:       5 * time.Minute,
			PhoneCodeTTL:       2 * time.Minute,
			ResendLimitPerHour: 5,
			MaxAttempts:        3,
		},
	}

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	redisRepo := redisrepo.NewRepository(client)

	store := newMemStore()
	box := &inbox{last: map[string]string{}}
	dispatcher := notification.NewDispatcher(time.Second, map[constant.AuthType]notification.Transport{
		constant.AuthTypeEmail: box,
		constant.AuthTypePhone: box,
	})
	classifier := identifier.New("")
	verificationApp := appverification.NewVerificationApp(cfg, store, store, store, redisRepo)
	stateMachine := lifecycle.NewStateMachine(store)
	tokenApp := apptoken.NewTokenApp(cfg, store, redisRepo)
	photos := accountappmocks.NewPhotoStorage(t)

	return &flow{
		store:      store,
		inbox:      box,
		dispatcher: dispatcher,
		accounts:   appaccount.NewAccountApp(cfg, classifier, store, store, redisRepo, verificationApp, stateMachine, tokenApp, dispatcher, photos),
		auth:       appauth.NewAuthApp(classifier, store, tokenApp),
		tokens:     tokenApp,
		passwords:  apppassword.NewPasswordApp(cfg, classifier, store, store, redisRepo, verificationApp, dispatcher),
		photos:     photos,
	}
}

func (f *flow) delivered(contact string) string {
	f.dispatcher.Wait()
	return f.inbox.code(contact)
}

func requireType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, cerr.IsType(err, want), "got %v, want %s", err, constant.ErrorTypeKind[want])
}

func TestFlow_SignupToLogin(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)

	signup, err := f.accounts.SignUp(ctx, &model.SignUpRequest{EmailPhoneNumber: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthTypeEmail, signup.AuthType)
	assert.Equal(t, constant.AuthStatusNew, signup.AuthStatus)
	id := signup.ID

	_, err = f.accounts.SignUp(ctx, &model.SignUpRequest{EmailPhoneNumber: "BOB@example.com"})
	requireType(t, err, constant.ErrDuplicateIdentifier)

	first := f.delivered("bob@example.com")
	require.Len(t, first, 4)

	_, err = f.accounts.ResendCode(ctx, id)
	require.NoError(t, err)
	second := f.delivered("bob@example.com")

	if first != second {
		_, err = f.accounts.VerifyCode(ctx, id, &model.VerifyRequest{Code: first})
		requireType(t, err, constant.ErrCodeMismatch)
	}

	_, err = f.auth.Login(ctx, &model.LoginRequest{UserInput: "bob@example.com", Password: "whatever-123"})
	requireType(t, err, constant.ErrIncompleteRegistration)

	status, err := f.accounts.VerifyCode(ctx, id, &model.VerifyRequest{Code: second})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusCodeVerified, status.AuthStatus)

	err = appverification.NewVerificationApp(&config.Config{}, f.store, f.store, f.store, nil).Verify(ctx, id, second)
	requireType(t, err, constant.ErrCodeAlreadyUsed)

	_, err = f.accounts.ResendCode(ctx, id)
	requireType(t, err, constant.ErrIllegalTransition)

	status, err = f.accounts.CompleteProfile(ctx, id, &model.CompleteProfileRequest{
		FirstName: "Bob", LastName: "Builder", Username: "bob123",
		Password: "Tr1cky-horse", ConfirmPassword: "Tr1cky-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusDone, status.AuthStatus)

	_, err = f.auth.Login(ctx, &model.LoginRequest{UserInput: "bob123", Password: "wrong-horse"})
	requireType(t, err, constant.ErrInvalidCredentials)

	login, err := f.auth.Login(ctx, &model.LoginRequest{UserInput: "bob123", Password: "Tr1cky-horse"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusDone, login.AuthStatus)
	claims, err := f.tokens.ValidateAccess(ctx, login.Access)
	require.NoError(t, err)
	assert.Equal(t, id, claims.AccountID)

	profile, err := f.accounts.GetProfile(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, profile.LastLogin)
	firstLogin := *profile.LastLogin

	time.Sleep(5 * time.Millisecond)
	refreshed, err := f.tokens.Refresh(ctx, login.Refresh)
	require.NoError(t, err)
	_, err = f.tokens.ValidateAccess(ctx, refreshed.Access)
	require.NoError(t, err)
	profile, err = f.accounts.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.True(t, profile.LastLogin.After(firstLogin))

	require.NoError(t, f.tokens.Revoke(ctx, login.Refresh))
	_, err = f.tokens.Refresh(ctx, login.Refresh)
	requireType(t, err, constant.ErrTokenRevoked)

	f.photos.On("Store", mock.Anything, id, mock.Anything).Return("photos/"+id+"/p.jpg", nil).Twice()
	photo, err := f.accounts.SetPhoto(ctx, id, &model.PhotoUpload{Filename: "me.jpg"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusPhotoStep, photo.AuthStatus)
	photo, err = f.accounts.SetPhoto(ctx, id, &model.PhotoUpload{Filename: "me.jpg"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusPhotoStep, photo.AuthStatus)

	login, err = f.auth.Login(ctx, &model.LoginRequest{UserInput: "BOB123", Password: "Tr1cky-horse"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusPhotoStep, login.AuthStatus)
}

func TestFlow_ExpiredCode(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)

	signup, err := f.accounts.SignUp(ctx, &model.SignUpRequest{EmailPhoneNumber: "+14155552671"})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthTypePhone, signup.AuthType)
	code := f.delivered("+14155552671")

	f.store.expireLatest(signup.ID)
	_, err = f.accounts.VerifyCode(ctx, signup.ID, &model.VerifyRequest{Code: code})
	requireType(t, err, constant.ErrCodeExpired)

	profile, err := f.accounts.GetProfile(ctx, signup.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusNew, profile.AuthStatus)
}

// wrongCode returns a code of the same length that differs from code.
func wrongCode(code string) string {
	first := (code[0]-'0'+1)%10 + '0'
	return string(first) + code[1:]
}

// register takes a fresh email account through signup, verification and profile.
func (f *flow) register(t *testing.T, email, username, password string) string {
	t.Helper()
	ctx := context.Background()

	signup, err := f.accounts.SignUp(ctx, &model.SignUpRequest{EmailPhoneNumber: email})
	require.NoError(t, err)
	_, err = f.accounts.VerifyCode(ctx, signup.ID, &model.VerifyRequest{Code: f.delivered(email)})
	require.NoError(t, err)
	_, err = f.accounts.CompleteProfile(ctx, signup.ID, &model.CompleteProfileRequest{
		FirstName: "Ann", LastName: "Lee", Username: username,
		Password: password, ConfirmPassword: password,
	})
	require.NoError(t, err)
	return signup.ID
}

func TestFlow_CodeStopsWorkingAfterRepeatedGuesses(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)

	signup, err := f.accounts.SignUp(ctx, &model.SignUpRequest{EmailPhoneNumber: "carol@example.com"})
	require.NoError(t, err)
	code := f.delivered("carol@example.com")

	for i := 0; i < 3; i++ {
		_, err = f.accounts.VerifyCode(ctx, signup.ID, &model.VerifyRequest{Code: wrongCode(code)})
		requireType(t, err, constant.ErrCodeMismatch)
	}
	_, err = f.accounts.VerifyCode(ctx, signup.ID, &model.VerifyRequest{Code: code})
	requireType(t, err, constant.ErrCodeExpired)

	_, err = f.accounts.ResendCode(ctx, signup.ID)
	require.NoError(t, err)
	status, err := f.accounts.VerifyCode(ctx, signup.ID, &model.VerifyRequest{Code: f.delivered("carol@example.com")})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthStatusCodeVerified, status.AuthStatus)
}

func TestFlow_PasswordReset(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	id := f.register(t, "dave@example.com", "dave77", "Old-pass-word1")

	login, err := f.auth.Login(ctx, &model.LoginRequest{UserInput: "dave77", Password: "Old-pass-word1"})
	require.NoError(t, err)

	_, err = f.passwords.ForgotPassword(ctx, &model.ForgotPasswordRequest{EmailOrPhone: "dave@example.com"})
	require.NoError(t, err)
	code := f.delivered("dave@example.com")

	reset := func(code string) error {
		_, err := f.passwords.ResetPassword(ctx, &model.ResetPasswordRequest{
			EmailOrPhone: "dave@example.com", Code: code,
			Password: "N3w-pass-word!", ConfirmPassword: "N3w-pass-word!",
		})
		return err
	}
	for i := 0; i < 3; i++ {
		requireType(t, reset(wrongCode(code)), constant.ErrCodeMismatch)
	}
	requireType(t, reset(code), constant.ErrCodeExpired)

	_, err = f.auth.Login(ctx, &model.LoginRequest{UserInput: "dave77", Password: "Old-pass-word1"})
	require.NoError(t, err)

	_, err = f.passwords.ForgotPassword(ctx, &model.ForgotPasswordRequest{EmailOrPhone: "dave@example.com"})
	require.NoError(t, err)
	require.NoError(t, reset(f.delivered("dave@example.com")))

	_, err = f.tokens.Refresh(ctx, login.Refresh)
	requireType(t, err, constant.ErrTokenRevoked)

	_, err = f.auth.Login(ctx, &model.LoginRequest{UserInput: "dave77", Password: "Old-pass-word1"})
	requireType(t, err, constant.ErrInvalidCredentials)
	after, err := f.auth.Login(ctx, &model.LoginRequest{UserInput: "dave77", Password: "N3w-pass-word!"})
	require.NoError(t, err)
	assert.Equal(t, id, mustAccountID(t, f, after.Access))
}

func mustAccountID(t *testing.T, f *flow, access string) string {
	t.Helper()
	claims, err := f.tokens.ValidateAccess(context.Background(), access)
	require.NoError(t, err)
	return claims.AccountID
}
