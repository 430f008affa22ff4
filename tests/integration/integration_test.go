package integrations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"cardex/internal/app"
	"cardex/internal/models"
	"cardex/internal/pkg/logger"
	"cardex/internal/service"
	"cardex/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

var testDatabaseURI, testServerPort string

func init() {
	if err := godotenv.Load("../integration/.env"); err != nil {
		log.Println("No .env file found, using default values")
	}

	testDatabaseURI = os.Getenv("TEST_DATABASE_URI")
	testServerPort = os.Getenv("TEST_SERVER_PORT")
}

type IntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	db     *storage.PostgreSQL
}

func (s *IntegrationTestSuite) SetupSuite() {

	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger("info"); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	s.db, err = storage.NewPostgreSQL(testDatabaseURI, l)
	s.Require().NoError(err, "Error connecting to test database")

	rollConfig := app.RollConfig{Cooldown: 24 * time.Hour, CardCount: 10, LevelMin: 1, LevelMax: 5}
	appInstance := app.NewApp(s.db, l, rollConfig)
	serviceInstance := service.NewService(appInstance, "localhost:"+testServerPort, l)

	s.server = httptest.NewServer(serviceInstance.NewRouter())
	s.client = s.server.Client()
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.server.Close()
	s.db.Close()
}

// registerUser creates a user with a unique name and logs in, returning the
// created user and a bearer token.
func (s *IntegrationTestSuite) registerUser(name string) (models.User, string) {
	username := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	createReq := models.CreateUserRequest{
		Username: username,
		Password: "password",
		Email:    username + "@example.com",
	}
	reqBody, err := json.Marshal(createReq)
	s.Require().NoError(err, "Error marshaling user creation request")

	resp, err := s.client.Post(s.server.URL+"/users", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending user creation request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for user creation")

	var user models.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding created user")

	loginReq := models.LoginRequest{Username: username, Password: "password"}
	reqBody, err = json.Marshal(loginReq)
	s.Require().NoError(err, "Error marshaling login request")

	resp, err = s.client.Post(s.server.URL+"/auth/login", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending login request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for login")

	var loginResp models.LoginResponse
	err = json.NewDecoder(resp.Body).Decode(&loginResp)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding login response")
	s.Require().NotEmpty(loginResp.AccessToken, "Token should not be empty")

	return user, loginResp.AccessToken
}

// createCard adds a catalog card of the given level.
func (s *IntegrationTestSuite) createCard(name string, level int) models.Card {
	createReq := models.CreateCardRequest{Name: name, Level: level}
	reqBody, err := json.Marshal(createReq)
	s.Require().NoError(err, "Error marshaling card creation request")

	resp, err := s.client.Post(s.server.URL+"/cards", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending card creation request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for card creation")

	var card models.Card
	err = json.NewDecoder(resp.Body).Decode(&card)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding created card")
	return card
}

// createCollection adds a ledger entry using the provided token.
func (s *IntegrationTestSuite) createCollection(token, idUser, idCard string, amount int) models.Collection {
	createReq := models.CreateCollectionRequest{IDUser: idUser, IDCard: idCard, Amount: amount}
	reqBody, err := json.Marshal(createReq)
	s.Require().NoError(err, "Error marshaling collection creation request")

	req, err := http.NewRequest("POST", s.server.URL+"/collections", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating collection creation request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing collection creation request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for collection creation")

	var entry models.Collection
	err = json.NewDecoder(resp.Body).Decode(&entry)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding created collection entry")
	return entry
}

// getPairEntry fetches the ledger entry of one (user, card) pair.
func (s *IntegrationTestSuite) getPairEntry(idUser, idCard string) models.Collection {
	resp, err := s.client.Get(s.server.URL + "/collections/" + idUser + "/" + idCard)
	s.Require().NoError(err, "Error fetching collection entry")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for collection entry")

	var entry models.Collection
	err = json.NewDecoder(resp.Body).Decode(&entry)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding collection entry")
	return entry
}

func (s *IntegrationTestSuite) TestRollGrantsCards() {
	user, _ := s.registerUser("roller")
	for level := 1; level <= 5; level++ {
		s.createCard(fmt.Sprintf("roll_card_l%d", level), level)
	}

	req, err := http.NewRequest("PUT", s.server.URL+"/cards/user/"+user.ID+"/roll", nil)
	s.Require().NoError(err, "Error creating roll request")

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing roll request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for first roll")

	var entries []models.Collection
	err = json.NewDecoder(resp.Body).Decode(&entries)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding roll response")
	s.Require().Len(entries, 10, "A roll should grant 10 cards")

	// The second roll inside the cooldown window must be rejected.
	req, err = http.NewRequest("PUT", s.server.URL+"/cards/user/"+user.ID+"/roll", nil)
	s.Require().NoError(err, "Error creating second roll request")

	resp, err = s.client.Do(req)
	s.Require().NoError(err, "Error executing second roll request")
	s.Require().Equal(http.StatusTeapot, resp.StatusCode, "Expected status 418 for roll on cooldown")
	resp.Body.Close()
}

func (s *IntegrationTestSuite) TestTradeAccept() {
	alice, aliceToken := s.registerUser("alice")
	bob, bobToken := s.registerUser("bob")

	offered := s.createCard("trade_offered", 2)
	wanted := s.createCard("trade_wanted", 2)

	s.createCollection(aliceToken, alice.ID, offered.ID, 1)
	s.createCollection(bobToken, bob.ID, wanted.ID, 1)

	tradeReq := models.CreateTradeRequest{
		IDUserWaiting: alice.ID,
		IDUser:        bob.ID,
		IDCard:        offered.ID,
		IDCardWanted:  wanted.ID,
	}
	reqBody, err := json.Marshal(tradeReq)
	s.Require().NoError(err, "Error marshaling trade creation request")

	req, err := http.NewRequest("POST", s.server.URL+"/trades", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating trade creation request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+aliceToken)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing trade creation request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for trade creation")

	var trade models.Trade
	err = json.NewDecoder(resp.Body).Decode(&trade)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding created trade")
	s.Require().False(trade.Accepted, "A new trade should be pending")

	// Both copies are escrowed while the trade is pending.
	entry := s.getPairEntry(alice.ID, offered.ID)
	s.Require().Equal(1, entry.Waiting, "Offered copy should be escrowed")

	patchBody := []byte(`{"accepted": true}`)
	req, err = http.NewRequest("PATCH", s.server.URL+"/trades/"+trade.ID, bytes.NewBuffer(patchBody))
	s.Require().NoError(err, "Error creating trade accept request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bobToken)

	resp, err = s.client.Do(req)
	s.Require().NoError(err, "Error executing trade accept request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade accept")

	var accepted models.Trade
	err = json.NewDecoder(resp.Body).Decode(&accepted)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding accepted trade")
	s.Require().True(accepted.Accepted, "Trade should be accepted")

	// The cards changed hands without being duplicated.
	entry = s.getPairEntry(alice.ID, offered.ID)
	s.Require().Equal(0, entry.Amount, "Alice should no longer own the offered card")
	s.Require().Equal(0, entry.Waiting, "Escrow should be released")

	entry = s.getPairEntry(alice.ID, wanted.ID)
	s.Require().Equal(1, entry.Amount, "Alice should own the wanted card")

	entry = s.getPairEntry(bob.ID, offered.ID)
	s.Require().Equal(1, entry.Amount, "Bob should own the offered card")

	// Accepting again must be rejected.
	req, err = http.NewRequest("PATCH", s.server.URL+"/trades/"+trade.ID, bytes.NewBuffer(patchBody))
	s.Require().NoError(err, "Error creating repeated accept request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bobToken)

	resp, err = s.client.Do(req)
	s.Require().NoError(err, "Error executing repeated accept request")
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Expected status 409 for repeated accept")
	resp.Body.Close()

	// Bob received the trade offer notification.
	resp, err = s.client.Get(s.server.URL + "/notifications/users/" + bob.ID)
	s.Require().NoError(err, "Error fetching bob's notifications")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for notifications")

	var inbox []models.Notification
	err = json.NewDecoder(resp.Body).Decode(&inbox)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding notifications")
	s.Require().NotEmpty(inbox, "Bob should have been notified about the offer")
}

func (s *IntegrationTestSuite) TestTradeDecline() {
	alice, aliceToken := s.registerUser("alice")
	bob, bobToken := s.registerUser("bob")

	offered := s.createCard("decline_offered", 1)
	wanted := s.createCard("decline_wanted", 1)

	s.createCollection(aliceToken, alice.ID, offered.ID, 1)
	s.createCollection(bobToken, bob.ID, wanted.ID, 1)

	tradeReq := models.CreateTradeRequest{
		IDUserWaiting: alice.ID,
		IDUser:        bob.ID,
		IDCard:        offered.ID,
		IDCardWanted:  wanted.ID,
	}
	reqBody, err := json.Marshal(tradeReq)
	s.Require().NoError(err, "Error marshaling trade creation request")

	req, err := http.NewRequest("POST", s.server.URL+"/trades", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error creating trade creation request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+aliceToken)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing trade creation request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for trade creation")

	var trade models.Trade
	err = json.NewDecoder(resp.Body).Decode(&trade)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding created trade")

	req, err = http.NewRequest("DELETE", s.server.URL+"/trades/"+trade.ID, nil)
	s.Require().NoError(err, "Error creating trade withdraw request")
	req.Header.Set("Authorization", "Bearer "+aliceToken)

	resp, err = s.client.Do(req)
	s.Require().NoError(err, "Error executing trade withdraw request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade withdraw")
	resp.Body.Close()

	// The escrowed copies are free again.
	entry := s.getPairEntry(alice.ID, offered.ID)
	s.Require().Equal(1, entry.Amount, "Alice should still own the offered card")
	s.Require().Equal(0, entry.Waiting, "Escrow should be released")

	entry = s.getPairEntry(bob.ID, wanted.ID)
	s.Require().Equal(0, entry.Waiting, "Bob's escrow should be released")

	resp, err = s.client.Get(s.server.URL + "/trades/" + trade.ID)
	s.Require().NoError(err, "Error fetching withdrawn trade")
	s.Require().Equal(http.StatusNotFound, resp.StatusCode, "Expected status 404 for withdrawn trade")
	resp.Body.Close()
}

func TestIntegrationTestSuite(t *testing.T) {
	if testDatabaseURI == "" {
		t.Skip("TEST_DATABASE_URI is not set; skipping integration tests")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
