package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"laundry/cmd"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/profilerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret   = "laundry-test-secret-with-enough-bytes"
	testIssuer   = "https://auth.laundry.test/"
	testAudience = "laundry-api"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type recordingPublisher struct {
	mu      sync.Mutex
	changes []order.StatusChange
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, _ *order.Order, change order.StatusChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.changes)
}

// ServerTestSuite drives the JSON API end to end against an in-memory
// SQLite database, with the same wiring the binary uses.
type ServerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	echo      *echo.Echo
	publisher *recordingPublisher
	orders    *orderrepo.GormOrderRepository
	profiles  *profilerepo.GormProfileRepository

	customer kernel.UUID
	staff    kernel.UUID
	admin    kernel.UUID
}

func (suite *ServerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(db.AutoMigrate(postgres.Models()...))
	suite.db = db

	suite.publisher = &recordingPublisher{}
	cfg := cmd.Config{AuthJWTSecret: testSecret, AuthIssuer: testIssuer, AuthAudience: testAudience}
	root := cmd.NewCompositionRoot(cfg, db, suite.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))

	server, err := root.CreateHTTPServer()
	suite.Require().NoError(err)
	suite.echo = echo.New()
	server.Register(suite.echo)

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.profiles = profilerepo.NewGormProfileRepository(db, noopTracker{})

	suite.customer = kernel.NewUUID()
	suite.staff = suite.seedProfile(profile.Staff)
	suite.admin = suite.seedProfile(profile.Admin)
}

func (suite *ServerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *ServerTestSuite) seedProfile(role profile.Role) kernel.UUID {
	p, err := profile.NewProfile(kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	_, err = p.ChangeRole(role, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.profiles.Save(context.Background(), p))
	return p.ID()
}

func (suite *ServerTestSuite) seedOrder(laundryID string, status order.Status, tl order.Timeline) *order.Order {
	token, err := kernel.ParseToken(laundryID)
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:         kernel.NewUUID(),
		LaundryID:  token,
		UserID:     suite.customer,
		WashType:   order.Normal,
		PickupType: order.SelfDrop,
		Status:     status,
		Timeline:   tl,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
		UpdatedAt:  time.Now().UTC().Add(-time.Hour),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *ServerTestSuite) token(subject string, secret string) string {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(secret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	suite.Require().NoError(err)

	now := time.Now()
	raw, err := jwt.Signed(signer).Claims(jwt.Claims{
		Subject:   subject,
		Issuer:    testIssuer,
		Audience:  jwt.Audience{testAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
		Expiry:    jwt.NewNumericDate(now.Add(time.Hour)),
	}).CompactSerialize()
	suite.Require().NoError(err)
	return raw
}

func (suite *ServerTestSuite) do(method, path string, as kernel.UUID, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if as != (kernel.UUID{}) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+suite.token(as.String(), testSecret))
	}

	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](suite *ServerTestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (suite *ServerTestSuite) activityTypes(userID kernel.UUID) []string {
	var types []string
	suite.Require().NoError(suite.db.Raw(
		`SELECT activity_type FROM user_activity WHERE user_id = ? ORDER BY created_at`, userID.String(),
	).Scan(&types).Error)
	return types
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", kernel.UUID{}, nil)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestRejectsMissingAndForgedTokens() {
	rec := suite.do(http.MethodGet, "/api/v1/session", kernel.UUID{}, nil)
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal(http.StatusUnauthorized, decode[httpin.Problem](suite, rec).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", http.NoBody)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+suite.token(suite.customer.String(), "some-other-secret-value"))
	forged := httptest.NewRecorder()
	suite.echo.ServeHTTP(forged, req)
	suite.Equal(http.StatusUnauthorized, forged.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/session", http.NoBody)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+suite.token("not-a-uuid", testSecret))
	badSubject := httptest.NewRecorder()
	suite.echo.ServeHTTP(badSubject, req)
	suite.Equal(http.StatusUnauthorized, badSubject.Code)
}

func (suite *ServerTestSuite) TestSession_RedirectsFromEntryRouteOnly() {
	rec := suite.do(http.MethodGet, "/api/v1/session?from=/auth", suite.admin, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	resp := decode[httpin.SessionResponse](suite, rec)
	suite.Equal("admin", resp.Role)
	suite.Equal("/admin-dashboard", resp.LandingRoute)
	suite.Equal("/admin-dashboard", resp.RedirectTo)

	rec = suite.do(http.MethodGet, "/api/v1/session?from=/orders/history", suite.staff, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	resp = decode[httpin.SessionResponse](suite, rec)
	suite.Equal("/staff-scan", resp.LandingRoute)
	suite.Empty(resp.RedirectTo)
}

func (suite *ServerTestSuite) TestSession_MissingProfileIsCustomerAndRecordsActivity() {
	rec := suite.do(http.MethodGet, "/api/v1/session", suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	resp := decode[httpin.SessionResponse](suite, rec)
	suite.Equal("customer", resp.Role)
	suite.Equal("/dashboard", resp.RedirectTo)

	rec = suite.do(http.MethodDelete, "/api/v1/session", suite.customer, nil)
	suite.Equal(http.StatusNoContent, rec.Code)

	suite.Equal([]string{profile.ActivitySignedIn, profile.ActivitySignedOut}, suite.activityTypes(suite.customer))
}

func (suite *ServerTestSuite) TestProfile_ReadAndUpdate() {
	rec := suite.do(http.MethodGet, "/api/v1/profile", suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("customer", decode[httpin.ProfileResponse](suite, rec).Role)

	rec = suite.do(http.MethodPut, "/api/v1/profile", suite.customer, httpin.UpdateProfileRequest{
		FullName: "Asha Rao", Phone: "9876543210", HostelName: "Ganga", RoomNumber: "214",
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[httpin.ProfileResponse](suite, rec)
	suite.Equal("Ganga", updated.HostelName)
	suite.Equal("customer", updated.Role)
}

func (suite *ServerTestSuite) TestBookingStep_MissingPhoneBlocksStepOne() {
	rec := suite.do(http.MethodPost, "/api/v1/bookings/steps/1/validate", suite.customer, httpin.BookingDraftRequest{
		FullName: "Asha Rao", HostelName: "Ganga", RoomNumber: "214",
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
	problem := decode[httpin.Problem](suite, rec)
	suite.Equal("Missing Information", problem.Title)
	suite.Equal("Please fill in all required fields", problem.Message)

	rec = suite.do(http.MethodPost, "/api/v1/bookings/steps/1/validate", suite.customer, httpin.BookingDraftRequest{
		FullName: "Asha Rao", Phone: "9876543210", HostelName: "Ganga", RoomNumber: "214",
	})
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestBooking_CreateTicketAndCancel() {
	draft := httpin.BookingDraftRequest{
		FullName:    "Asha Rao",
		Phone:       "9876543210",
		HostelName:  "Ganga",
		RoomNumber:  "214",
		BookingDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		TimeSlot:    "10:00 AM - 12:00 PM",
		LaundryType: "regular_wash",
		Items:       map[string]int{"shirts": 3, "socks": 0},
	}

	rec := suite.do(http.MethodPost, "/api/v1/bookings", suite.customer, draft)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.BookingResponse](suite, rec)
	suite.Contains(created.BarcodeID, "LDY")
	suite.Equal(3, created.TotalItems)
	suite.Equal("pending", created.Status)

	rec = suite.do(http.MethodGet, "/api/v1/bookings/"+created.ID, suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(created.BarcodeID, decode[httpin.BookingResponse](suite, rec).BarcodeID)

	rec = suite.do(http.MethodGet, "/api/v1/bookings/"+created.ID, kernel.NewUUID(), nil)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("No booking found", decode[httpin.Problem](suite, rec).Title)

	rec = suite.do(http.MethodGet, "/api/v1/bookings/"+created.ID, suite.staff, nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/bookings", suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Len(decode[[]httpin.BookingResponse](suite, rec), 1)

	rec = suite.do(http.MethodPost, "/api/v1/bookings/"+created.ID+"/cancel", kernel.NewUUID(), nil)
	suite.Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/bookings/"+created.ID+"/cancel", suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("cancelled", decode[httpin.BookingResponse](suite, rec).Status)

	rec = suite.do(http.MethodPut, "/api/v1/admin/bookings/"+created.ID+"/status", suite.admin, httpin.StatusRequest{Status: "confirmed"})
	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestOrder_CreateLookupAndAdvance() {
	rec := suite.do(http.MethodPost, "/api/v1/orders", suite.customer, httpin.CreateOrderRequest{PickupType: "self_drop"})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.OrderResponse](suite, rec)
	suite.Equal("pending", created.Status)
	suite.Equal("normal", created.WashType)

	rec = suite.do(http.MethodGet, "/api/v1/staff/orders/"+created.LaundryID, suite.staff, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	found := decode[httpin.OrderResponse](suite, rec)
	suite.Equal("picked_up", found.NextStatus)
	suite.Equal("Mark as Picked Up", found.ActionLabel)
	suite.True(found.CanAdvance)

	rec = suite.do(http.MethodPost, "/api/v1/staff/orders/"+created.LaundryID+"/advance", suite.staff, httpin.AdvanceOrderRequest{
		Feedback: "bag handle torn",
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	advanced := decode[httpin.OrderResponse](suite, rec)
	suite.Equal("picked_up", advanced.Status)
	suite.NotNil(advanced.PickupDate)
	suite.Equal("bag handle torn", advanced.Feedback)
	suite.Equal(1, suite.publisher.count())

	rec = suite.do(http.MethodGet, "/api/v1/orders", suite.customer, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	mine := decode[[]httpin.OrderResponse](suite, rec)
	suite.Require().Len(mine, 1)
	suite.Equal("picked_up", mine[0].Status)
}

func (suite *ServerTestSuite) TestAdvance_WashingToDryingKeepsEarlierStamp() {
	washingStarted := time.Date(2025, 1, 23, 8, 0, 0, 0, time.UTC)
	suite.seedOrder("LND20250123WASH01", order.Washing, order.Timeline{WashingStartedAt: &washingStarted})

	before := time.Now()
	rec := suite.do(http.MethodPost, "/api/v1/staff/orders/LND20250123WASH01/advance", suite.staff, nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[httpin.OrderResponse](suite, rec)
	suite.Equal("drying", resp.Status)
	suite.Require().NotNil(resp.DryingStartedAt)
	suite.False(resp.DryingStartedAt.Before(before.Add(-time.Second)))
	suite.Require().NotNil(resp.WashingStartedAt)
	suite.True(resp.WashingStartedAt.Equal(washingStarted))
}

func (suite *ServerTestSuite) TestAdvance_DeliveredIsConflict() {
	suite.seedOrder("LND20250123DONE01", order.Delivered, order.Timeline{})

	rec := suite.do(http.MethodGet, "/api/v1/staff/orders/LND20250123DONE01", suite.staff, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	resp := decode[httpin.OrderResponse](suite, rec)
	suite.False(resp.CanAdvance)
	suite.Empty(resp.NextStatus)

	rec = suite.do(http.MethodPost, "/api/v1/staff/orders/LND20250123DONE01/advance", suite.staff, nil)
	suite.Equal(http.StatusConflict, rec.Code)
	suite.Zero(suite.publisher.count())
}

func (suite *ServerTestSuite) TestLookup_UnknownLaundryIDIsNotFound() {
	rec := suite.do(http.MethodGet, "/api/v1/staff/orders/LND2025XXXX", suite.staff, nil)

	suite.Equal(http.StatusNotFound, rec.Code)
	problem := decode[httpin.Problem](suite, rec)
	suite.Equal("Order Not Found", problem.Title)
	suite.Equal(http.StatusNotFound, problem.Code)
}

func (suite *ServerTestSuite) TestRoleGating() {
	rec := suite.do(http.MethodGet, "/api/v1/staff/orders/LND2025XXXX", suite.customer, nil)
	suite.Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/admin/stats", suite.staff, nil)
	suite.Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/admin/stats", suite.admin, nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestAdmin_FilterByStatusAndSearch() {
	suite.seedOrder("LDY1737625000001", order.Completed, order.Timeline{})
	suite.seedOrder("LDY1737625000002", order.Washing, order.Timeline{})
	suite.seedOrder("LND20250123LDY17", order.Completed, order.Timeline{})
	suite.seedOrder("LND20250123ABCDE", order.Completed, order.Timeline{})

	rec := suite.do(http.MethodGet, "/api/v1/admin/orders?search=LDY17&status=completed", suite.admin, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	ids := make([]string, 0)
	for _, o := range decode[[]httpin.OrderResponse](suite, rec) {
		suite.Equal("completed", o.Status)
		ids = append(ids, o.LaundryID)
	}
	suite.ElementsMatch([]string{"LDY1737625000001", "LND20250123LDY17"}, ids)

	rec = suite.do(http.MethodGet, "/api/v1/admin/orders?status=lost", suite.admin, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/admin/stats", suite.admin, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	stats := decode[services.DashboardStats](suite, rec)
	suite.Equal(4, stats.Total)
	suite.Equal(3, stats.Completed)
	suite.Equal(1, stats.Ongoing)
}

func (suite *ServerTestSuite) TestAdmin_OverrideAndHistory() {
	o := suite.seedOrder("LND20250123OVER01", order.Drying, order.Timeline{})

	rec := suite.do(http.MethodPut, "/api/v1/admin/orders/"+o.ID().String()+"/status", suite.admin, httpin.StatusRequest{Status: "pending"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("pending", decode[httpin.OrderResponse](suite, rec).Status)

	rec = suite.do(http.MethodPut, "/api/v1/admin/orders/"+o.ID().String()+"/status", suite.admin, httpin.StatusRequest{Status: "lost"})
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/admin/orders/"+o.ID().String()+"/history", suite.admin, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	history := decode[[]httpin.StatusChangeResponse](suite, rec)
	suite.Require().Len(history, 1)
	suite.Require().NotNil(history[0].PreviousStatus)
	suite.Equal("drying", *history[0].PreviousStatus)
	suite.Equal("pending", history[0].NewStatus)
	suite.Equal(suite.admin.String(), history[0].ChangedBy)

	rec = suite.do(http.MethodGet, "/api/v1/admin/orders/"+kernel.NewUUID().String()+"/history", suite.admin, nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestAdmin_ChangeRole() {
	rec := suite.do(http.MethodPut, "/api/v1/admin/profiles/"+suite.staff.String()+"/role", suite.admin, httpin.ChangeRoleRequest{Role: "admin"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("/admin-dashboard", decode[httpin.ProfileResponse](suite, rec).LandingRoute)

	rec = suite.do(http.MethodGet, "/api/v1/admin/stats", suite.staff, nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestBatch_CreateAttachAdvance() {
	suite.seedOrder("LND20250123BAT001", order.PickedUp, order.Timeline{})

	rec := suite.do(http.MethodPost, "/api/v1/staff/batches", suite.staff, httpin.CreateBatchRequest{WashType: "normal"})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.BatchResponse](suite, rec)
	suite.Contains(created.BatchNumber, "BAT")

	rec = suite.do(http.MethodPost, "/api/v1/staff/batches/"+created.ID+"/orders", suite.staff, httpin.AttachOrdersRequest{
		LaundryIDs: []string{"LND20250123BAT001"},
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal(1, decode[httpin.BatchResponse](suite, rec).TotalOrders)

	rec = suite.do(http.MethodPost, "/api/v1/staff/batches/"+created.ID+"/advance", suite.staff, nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	advanced := decode[httpin.BatchResponse](suite, rec)
	suite.Equal("washing", advanced.Status)
	suite.NotNil(advanced.WashingStartedAt)

	rec = suite.do(http.MethodPost, "/api/v1/staff/batches/"+created.ID+"/orders", suite.staff, httpin.AttachOrdersRequest{
		LaundryIDs: []string{"LND20250123BAT001"},
	})
	suite.Equal(http.StatusConflict, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
