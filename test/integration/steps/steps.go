// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/config"
	"github.com/kairos-app/backend/internal/domain/valueobject"
	"github.com/kairos-app/backend/internal/infra/dependency"
	"github.com/kairos-app/backend/internal/integration/persistence/model"
	"github.com/kairos-app/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	resetToken        string
	expiredToken      string
	currentUserID     uuid.UUID
	currentHabitID    uuid.UUID
	currentTodoID     uuid.UUID
	currentEntryID    uuid.UUID
	currentAccountID  uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("kairos", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"email_queue":           &model.EmailQueueModel{},
			"habits":                &model.HabitModel{},
			"habit_logs":            &model.HabitLogModel{},
			"todos":                 &model.TodoModel{},
			"journal_entries":       &model.JournalEntryModel{},
			"accounts":              &model.AccountModel{},
			"transactions":          &model.TransactionModel{},
			"cognitive_analyses":    &model.CognitiveAnalysisModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^the user has (\d+) XP$`, test.theUserHasXP)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Habit setup steps
	ctx.Given(`^a habit exists with name "([^"]*)" and frequency "([^"]*)"$`, test.aHabitExistsWithNameAndFrequency)
	ctx.Given(`^the habit was logged done (\d+) days? ago$`, test.theHabitWasLoggedDoneDaysAgo)
	ctx.Given(`^the habit was logged done today$`, test.theHabitWasLoggedDoneToday)

	// Todo setup steps
	ctx.Given(`^a todo exists with title "([^"]*)"$`, test.aTodoExistsWithTitle)
	ctx.Given(`^a todo exists with title "([^"]*)" due in (\d+) hours?$`, test.aTodoExistsWithTitleDueInHours)
	ctx.Given(`^the todo is completed$`, test.theTodoIsCompleted)

	// Journal setup steps
	ctx.Given(`^a journal entry exists with content "([^"]*)"$`, test.aJournalEntryExistsWithContent)

	// Finance setup steps
	ctx.Given(`^an account exists with name "([^"]*)" and type "([^"]*)"$`, test.anAccountExistsWithNameAndType)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" exists$`, test.aTransactionExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentHabitID = uuid.Nil
	t.currentTodoID = uuid.Nil
	t.currentEntryID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			if err != nil {
				panic(fmt.Sprintf("failed to wire test dependencies: %v", err))
			}

			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:              userID,
		Email:           email,
		Name:            name,
		PasswordHash:    hashPassword(password),
		XP:              0,
		StreakReminders: true,
		TermsAcceptedAt: time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	return t.db.DbConn.Create(user).Error
}

func (t *testContext) theUserHasXP(xp int) error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("xp", xp).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "kairos",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aHabitExistsWithNameAndFrequency(name, frequency string) error {
	habitID := uuid.New()
	t.currentHabitID = habitID

	now := time.Now().UTC()
	habitModel := &model.HabitModel{
		ID:        habitID,
		UserID:    t.currentUserID,
		Name:      name,
		Frequency: frequency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(habitModel).Error
}

func (t *testContext) theHabitWasLoggedDoneDaysAgo(daysAgo int) error {
	day := valueobject.NormalizeDay(time.Now().AddDate(0, 0, -daysAgo))
	return t.createHabitLog(day)
}

func (t *testContext) theHabitWasLoggedDoneToday() error {
	return t.createHabitLog(valueobject.NormalizeDay(time.Now()))
}

func (t *testContext) createHabitLog(day time.Time) error {
	now := time.Now().UTC()
	logModel := &model.HabitLogModel{
		ID:        uuid.New(),
		HabitID:   t.currentHabitID,
		UserID:    t.currentUserID,
		Day:       day,
		Status:    "done",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(logModel).Error
}

func (t *testContext) aTodoExistsWithTitle(title string) error {
	return t.createTodo(title, nil)
}

func (t *testContext) aTodoExistsWithTitleDueInHours(title string, hours int) error {
	deadline := time.Now().Add(time.Duration(hours) * time.Hour)
	return t.createTodo(title, &deadline)
}

func (t *testContext) createTodo(title string, deadline *time.Time) error {
	todoID := uuid.New()
	t.currentTodoID = todoID

	now := time.Now()
	todoModel := &model.TodoModel{
		ID:        todoID,
		UserID:    t.currentUserID,
		Title:     title,
		Date:      valueobject.NormalizeDay(now),
		Deadline:  deadline,
		Priority:  5,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	return t.db.DbConn.Create(todoModel).Error
}

func (t *testContext) theTodoIsCompleted() error {
	now := time.Now().UTC()
	return t.db.DbConn.Model(&model.TodoModel{}).
		Where("id = ?", t.currentTodoID).
		Updates(map[string]any{
			"is_completed": true,
			"completed_at": now,
		}).Error
}

func (t *testContext) aJournalEntryExistsWithContent(content string) error {
	entryID := uuid.New()
	t.currentEntryID = entryID

	now := time.Now()
	entryModel := &model.JournalEntryModel{
		ID:        entryID,
		UserID:    t.currentUserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(entryModel).Error
}

func (t *testContext) anAccountExistsWithNameAndType(name, accountType string) error {
	accountID := uuid.New()
	t.currentAccountID = accountID

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(accountModel).Error
}

func (t *testContext) aTransactionExists(transactionType, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		AccountID: t.currentAccountID,
		Date:      now,
		Amount:    value,
		Type:      transactionType,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{habit_id}}", t.currentHabitID.String())
	content = strings.ReplaceAll(content, "{{todo_id}}", t.currentTodoID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created resource IDs so later steps can reference them
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			switch {
			case hasKey(responseBody, "frequency"):
				t.currentHabitID = id
			case hasKey(responseBody, "effective_priority"):
				t.currentTodoID = id
			case hasKey(responseBody, "content"):
				t.currentEntryID = id
			case hasKey(responseBody, "account_id"):
				t.lastTransactionID = id
			case hasKey(responseBody, "type"):
				t.currentAccountID = id
			}
		}
	}

	return nil
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	expected := t.replacePlaceholders(expectedValue)
	if actualValue != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
