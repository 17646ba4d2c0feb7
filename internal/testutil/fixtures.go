package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/fandom"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func shortID() string {
	return uuid.New().String()[:8]
}

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	nick     string
	password string
	gender   domain.Gender
	rank     domain.Rank
	mainRole domain.Lane
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	id := shortID()
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", id),
		nick:     fmt.Sprintf("nick_%s", id),
		password: "testpassword123",
		gender:   domain.GenderNA,
		rank:     domain.RankNA,
		mainRole: domain.LaneNA,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithNick sets the nick
func (b *UserBuilder) WithNick(nick string) *UserBuilder {
	b.nick = nick
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithMainRole sets the main role
func (b *UserBuilder) WithMainRole(lane domain.Lane) *UserBuilder {
	b.mainRole = lane
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	// MinCost keeps fixture setup fast
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		Nick:         b.nick,
		Gender:       b.gender,
		Rank:         b.rank,
		MainRole:     b.mainRole,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nick     string `json:"nick"`
	Gender   string `json:"gender"`
	Rank     string `json:"rank"`
	MainRole string `json:"mainrole"`
	Success  bool   `json:"success"`
	Token    string `json:"token"`
}

// BuildAndAuthenticate signs the user up through the API, logs in and
// returns the user and bearer token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	signup := map[string]string{
		"username": b.username,
		"password": b.password,
		"nick":     b.nick,
		"mainrole": string(b.mainRole),
	}
	resp := postJSON(t, ts.APIURL("/signup"), signup)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected signup status code: %d", resp.StatusCode)
	}

	login := map[string]string{
		"username": b.username,
		"password": b.password,
	}
	resp = postJSON(t, ts.APIURL("/login"), login)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	user := &domain.User{
		ID:       loginResp.ID,
		Username: loginResp.Username,
		Nick:     loginResp.Nick,
	}

	return user, loginResp.Token
}

func postJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()

	body, _ := json.Marshal(v)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to post %s: %v", url, err)
	}
	return resp
}

// DoRequest sends a request with an optional JSON body and bearer token
func DoRequest(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	return resp
}

// ChampionBuilder creates test champions together with their stats row
type ChampionBuilder struct {
	name  string
	lane  domain.Lane
	stats domain.Stats
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	return &ChampionBuilder{
		name:  fmt.Sprintf("Champion_%s", shortID()),
		lane:  domain.LaneTop,
		stats: domain.Stats{AD: 60, HP: 600, Armor: 30, MResist: 30, AtkSpeed: 0.65, MoveSpeed: 340},
	}
}

// WithName sets the champion name
func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	return b
}

// WithLane sets the champion lane
func (b *ChampionBuilder) WithLane(lane domain.Lane) *ChampionBuilder {
	b.lane = lane
	return b
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	stats := b.stats
	champion := &domain.Champion{
		Name:  b.name,
		Lane:  b.lane,
		Type:  "Fighter",
		Media: fmt.Sprintf("https://example.com/champions/%s.png", b.name),
		Stats: &stats,
	}

	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}

	return champion
}

// ItemBuilder creates test items together with their stats row
type ItemBuilder struct {
	name  string
	price int
}

// NewItemBuilder creates a new ItemBuilder with default values
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		name:  fmt.Sprintf("Item_%s", shortID()),
		price: 1000,
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

// WithPrice sets the item price
func (b *ItemBuilder) WithPrice(price int) *ItemBuilder {
	b.price = price
	return b
}

// Build creates the item in the database
func (b *ItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.Item {
	t.Helper()

	item := &domain.Item{
		Name:        b.name,
		Price:       b.price,
		Description: "A test item",
		Media:       fmt.Sprintf("https://example.com/items/%s.png", b.name),
		Stats:       &domain.Stats{AD: 10},
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	return item
}

// BuildBuilder creates test builds
type BuildBuilder struct {
	owner    *domain.User
	champion *domain.Champion
	title    string
	items    []*domain.Item
}

// NewBuildBuilder creates a new BuildBuilder with default values
func NewBuildBuilder() *BuildBuilder {
	return &BuildBuilder{
		title: fmt.Sprintf("Build_%s", shortID()),
	}
}

// WithOwner sets the build author
func (b *BuildBuilder) WithOwner(user *domain.User) *BuildBuilder {
	b.owner = user
	return b
}

// WithChampion sets the build champion
func (b *BuildBuilder) WithChampion(champion *domain.Champion) *BuildBuilder {
	b.champion = champion
	return b
}

// WithTitle sets the build title
func (b *BuildBuilder) WithTitle(title string) *BuildBuilder {
	b.title = title
	return b
}

// WithItems places items in the build at positions 1..n
func (b *BuildBuilder) WithItems(items ...*domain.Item) *BuildBuilder {
	b.items = items
	return b
}

// Build creates the build, and any missing owner or champion, in the database
func (b *BuildBuilder) Build(t *testing.T, db *gorm.DB) *domain.Build {
	t.Helper()

	if b.owner == nil {
		b.owner, _ = NewUserBuilder().Build(t, db)
	}
	if b.champion == nil {
		b.champion = NewChampionBuilder().Build(t, db)
	}

	build := domain.NewBuild(b.owner.ID, b.champion.ID, b.title, "A test build")
	if err := db.Omit("User", "Champion").Create(build).Error; err != nil {
		t.Fatalf("failed to create build: %v", err)
	}

	for i, item := range b.items {
		entry := &domain.BuildItem{BuildID: build.ID, ItemID: item.ID, ItemPosition: i + 1}
		if err := db.Omit("Build", "Item").Create(entry).Error; err != nil {
			t.Fatalf("failed to add item to build: %v", err)
		}
	}

	return build
}

// FanFixtures is a small fan-content data set
type FanFixtures struct {
	User      *fandom.User
	Character *fandom.Character
	Planet    *fandom.Planet
}

// NewFanFixtures creates one fan user, one character and one planet
func NewFanFixtures(t *testing.T, db *gorm.DB) *FanFixtures {
	t.Helper()

	id := shortID()
	f := &FanFixtures{
		User: &fandom.User{
			Username:     "fan_" + id,
			PasswordHash: "x",
			Email:        fmt.Sprintf("fan_%s@example.com", id),
		},
		Character: &fandom.Character{
			Fullname: "Character " + id,
			Age:      30,
			Faction:  fandom.FactionRebels,
			Type:     fandom.RoleHero,
		},
		Planet: &fandom.Planet{
			Name:      "Planet " + id,
			Size:      10000,
			Inhabited: true,
			Distance:  42000,
		},
	}

	for _, v := range []interface{}{f.User, f.Character, f.Planet} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("failed to create fan fixture: %v", err)
		}
	}
	return f
}
