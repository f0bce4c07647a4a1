package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/internal/application/usecase/auth"
	"github.com/card-tracker/backend/internal/application/usecase/card"
	"github.com/card-tracker/backend/internal/application/usecase/category"
	"github.com/card-tracker/backend/internal/application/usecase/healthscore"
	"github.com/card-tracker/backend/internal/application/usecase/income"
	"github.com/card-tracker/backend/internal/application/usecase/projection"
	"github.com/card-tracker/backend/internal/application/usecase/purchase"
	"github.com/card-tracker/backend/internal/application/usecase/simulation"
	"github.com/card-tracker/backend/internal/application/usecase/timeline"
	"github.com/card-tracker/backend/internal/infra/server/router"
	"github.com/card-tracker/backend/internal/integration/adapters"
	"github.com/card-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/card-tracker/backend/internal/integration/persistence"
	"github.com/card-tracker/backend/internal/integration/persistence/model"
	"github.com/card-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	refreshToken   string
	currentUserID  uuid.UUID
	currentCardID  uuid.UUID
	categoryID     uuid.UUID
	incomeID       uuid.UUID
	lastPurchaseID uuid.UUID
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
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("card_tracker", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"cards":          &model.CardModel{},
			"categories":     &model.CategoryModel{},
			"incomes":        &model.IncomeModel{},
			"purchases":      &model.PurchaseModel{},
			"installments":   &model.InstallmentModel{},
			"reminder_jobs":  &model.ReminderJobModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Domain setup steps
	ctx.Given(`^a card exists named "([^"]*)" with limit "([^"]*)" closing on day (\d+) and due on day (\d+)$`, test.aCardExists)
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Given(`^a recurring income of "([^"]*)" exists$`, test.aRecurringIncomeExists)

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
	t.currentUserID = uuid.Nil
	t.currentCardID = uuid.Nil
	t.categoryID = uuid.Nil
	t.incomeID = uuid.Nil
	t.lastPurchaseID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			redisClient := mock.NewRedis()

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			cardRepo := persistence.NewCardRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			incomeRepo := persistence.NewIncomeRepository(testDB.DbConn)
			purchaseRepo := persistence.NewPurchaseRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			cache := adapters.NewRedisCache(redisClient)
			quotaService := adapters.NewRedisQuotaServiceWithConfig(redisClient, 1000, time.Minute)
			advisor := adapters.NewGeminiAdvisor("") // unavailable, falls back to deterministic verdict

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create card use cases
			createCardUseCase := card.NewCreateCardUseCase(cardRepo)
			listCardsUseCase := card.NewListCardsUseCase(cardRepo)
			getCardUseCase := card.NewGetCardUseCase(cardRepo)
			updateCardUseCase := card.NewUpdateCardUseCase(cardRepo, purchaseRepo, cache)
			deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo, cache)

			// Create category use cases
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

			// Create income use cases
			createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
			listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
			updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
			deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

			// Create purchase use cases
			createPurchaseUseCase := purchase.NewCreatePurchaseUseCase(purchaseRepo, cardRepo, categoryRepo, cache)
			listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)
			getPurchaseUseCase := purchase.NewGetPurchaseUseCase(purchaseRepo)
			updatePurchaseUseCase := purchase.NewUpdatePurchaseUseCase(purchaseRepo, cardRepo, categoryRepo, cache)
			deletePurchaseUseCase := purchase.NewDeletePurchaseUseCase(purchaseRepo, cache)

			// Create insight use cases
			getTimelineUseCase := timeline.NewGetTimelineUseCase(purchaseRepo, cardRepo)
			simulatePurchaseUseCase := simulation.NewSimulatePurchaseUseCase(purchaseRepo, cardRepo, advisor, cache, quotaService)
			getLimitReleaseUseCase := projection.NewGetLimitReleaseUseCase(purchaseRepo)
			getHealthScoreUseCase := healthscore.NewGetHealthScoreUseCase(purchaseRepo, incomeRepo, cardRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			cardController := controller.NewCardController(
				createCardUseCase,
				listCardsUseCase,
				getCardUseCase,
				updateCardUseCase,
				deleteCardUseCase,
			)

			categoryController := controller.NewCategoryController(
				createCategoryUseCase,
				listCategoriesUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)

			incomeController := controller.NewIncomeController(
				createIncomeUseCase,
				listIncomesUseCase,
				updateIncomeUseCase,
				deleteIncomeUseCase,
			)

			purchaseController := controller.NewPurchaseController(
				createPurchaseUseCase,
				listPurchasesUseCase,
				getPurchaseUseCase,
				updatePurchaseUseCase,
				deletePurchaseUseCase,
			)

			timelineController := controller.NewTimelineController(getTimelineUseCase)
			simulationController := controller.NewSimulationController(simulatePurchaseUseCase)
			projectionController := controller.NewProjectionController(getLimitReleaseUseCase)
			healthScoreController := controller.NewHealthScoreController(getHealthScoreUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				cardController,
				categoryController,
				incomeController,
				purchaseController,
				timelineController,
				simulationController,
				projectionController,
				healthScoreController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

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

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:            userID,
		Email:         email,
		Name:          name,
		PasswordHash:  hashPassword(password),
		Tier:          "free",
		DueDateAlerts: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if createErr := t.createUser(email, "SecurePass123!", "Test User "+email); createErr != nil {
			return createErr
		}
	} else {
		t.currentUserID = userModel.ID
	}

	return t.issueTokensFor(t.currentUserID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "card-tracker",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "card-tracker",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// aCardExists seeds a card for the current user.
func (t *testContext) aCardExists(name, limit string, closingDay, dueDay int) error {
	creditLimit, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid credit limit '%s': %w", limit, err)
	}

	cardID := uuid.New()
	t.currentCardID = cardID

	now := time.Now().UTC()
	cardModel := &model.CardModel{
		ID:          cardID,
		UserID:      t.currentUserID,
		Name:        name,
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		CreditLimit: creditLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(cardModel)
	return result.Error
}

// aCategoryExistsWithName seeds a category for the current user.
func (t *testContext) aCategoryExistsWithName(name string) error {
	categoryID := uuid.New()
	t.categoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Color:     "#6366F1",
		Icon:      "tag",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

// aRecurringIncomeExists seeds a recurring income starting this month.
func (t *testContext) aRecurringIncomeExists(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid income amount '%s': %w", amount, err)
	}

	incomeID := uuid.New()
	t.incomeID = incomeID

	now := time.Now().UTC()
	incomeModel := &model.IncomeModel{
		ID:          incomeID,
		UserID:      t.currentUserID,
		Label:       "Salario",
		Amount:      value,
		Month:       int(now.Month()),
		Year:        now.Year(),
		IsRecurring: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(incomeModel)
	return result.Error
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
	content = strings.ReplaceAll(content, "{{card_id}}", t.currentCardID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.categoryID.String())
	content = strings.ReplaceAll(content, "{{income_id}}", t.incomeID.String())
	content = strings.ReplaceAll(content, "{{purchase_id}}", t.lastPurchaseID.String())
	content = strings.ReplaceAll(content, "{{today}}", time.Now().UTC().Format("2006-01-02"))
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
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs remembers entity IDs from responses so later steps can
// reference them through placeholders. The shape of each response body
// disambiguates what the ID belongs to.
func (t *testContext) captureIDs(body map[string]any) {
	if nested, ok := body["purchase"].(map[string]any); ok {
		body = nested
	}
	if nested, ok := body["card"].(map[string]any); ok {
		body = nested
	}

	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "installments"):
		t.lastPurchaseID = id
	case hasKey(body, "closing_day"):
		t.currentCardID = id
	case hasKey(body, "is_recurring"):
		t.incomeID = id
	case hasKey(body, "icon"):
		t.categoryID = id
	}
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
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
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
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
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
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
