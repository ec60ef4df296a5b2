package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-appointment-api/core/cache"
	"go-appointment-api/core/config"
	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"
	"go-appointment-api/core/utils"
	"go-appointment-api/modules/calendar/dto"
	"go-appointment-api/modules/calendar/entity"
	"go-appointment-api/modules/calendar/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"
	googleFreeBusyAPI     = googleCalendarAPIBase + "/freeBusy"

	oauthStateKeyPrefix = "oauth:state:"
	oauthStateTTL       = 10 * time.Minute
)

var calendarScopes = []string{"https://www.googleapis.com/auth/calendar.readonly"}

type CalendarService interface {
	ConnectURL(ctx context.Context, email string) (string, *errors.AppError)
	HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, *errors.AppError)
	Disconnect(ctx context.Context, email string) *errors.AppError
	// BusyBlocks fetches the busy intervals of every given member inside
	// [start, end). A member without a usable connection fails the whole
	// call: the computation never degrades to a subset of participants.
	BusyBlocks(ctx context.Context, emails []string, start, end time.Time) ([]dto.BusyBlock, *errors.AppError)
}

type calendarService struct {
	repo   repository.CalendarRepository
	cache  *cache.Cache
	client *http.Client
}

func NewCalendarService(repo repository.CalendarRepository, c *cache.Cache) CalendarService {
	return &calendarService{
		repo:   repo,
		cache:  c,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *calendarService) oauthConfig() *oauth2.Config {
	cfg := config.Get()
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       calendarScopes,
		Endpoint:     google.Endpoint,
	}
}

func (s *calendarService) ConnectURL(ctx context.Context, email string) (string, *errors.AppError) {
	if strings.TrimSpace(email) == "" {
		return "", errors.NewAppError(errors.ErrInvalidRequestData, "email is required", nil)
	}

	state := utils.GenerateRandomString(32)
	if err := s.cache.SetJSON(ctx, oauthStateKeyPrefix+state, email, oauthStateTTL); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store oauth state", err)
	}

	url := s.oauthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	return url, nil
}

func (s *calendarService) HandleCallback(ctx context.Context, state, code string) (*entity.CalendarConnection, *errors.AppError) {
	var email string
	hit, err := s.cache.GetJSON(ctx, oauthStateKeyPrefix+state, &email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load oauth state", err)
	}
	if !hit || email == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown or expired oauth state", nil)
	}
	_ = s.cache.Delete(ctx, oauthStateKeyPrefix+state)

	token, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "failed to exchange authorization code", err)
	}

	conn := &entity.CalendarConnection{
		Email:          email,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.Expiry,
	}
	saved, err := s.repo.Upsert(ctx, conn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to save calendar connection", err)
	}

	logger.Info("CalendarService:HandleCallback:Connected", "email", email)
	return saved, nil
}

func (s *calendarService) Disconnect(ctx context.Context, email string) *errors.AppError {
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to disconnect calendar", err)
	}
	return nil
}

func (s *calendarService) BusyBlocks(ctx context.Context, emails []string, start, end time.Time) ([]dto.BusyBlock, *errors.AppError) {
	if len(emails) == 0 {
		return nil, nil
	}

	connections, err := s.repo.GetByEmails(ctx, emails)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "failed to load calendar connections", err)
	}

	byEmail := make(map[string]*entity.CalendarConnection, len(connections))
	for i := range connections {
		byEmail[connections[i].Email] = &connections[i]
	}
	for _, email := range emails {
		if _, ok := byEmail[email]; !ok {
			return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
				fmt.Sprintf("no calendar connection for %s", email), nil)
		}
	}

	// One batched FreeBusy query with the first member's token; the other
	// members' calendars are listed as items.
	accessToken, appErr := s.ensureValidToken(ctx, byEmail[emails[0]])
	if appErr != nil {
		return nil, appErr
	}

	return s.callFreeBusy(ctx, accessToken, emails, start, end)
}

// ensureValidToken returns a usable access token, refreshing and persisting
// when the stored one expires within five minutes.
func (s *calendarService) ensureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, *errors.AppError) {
	if time.Now().Before(conn.TokenExpiresAt.Add(-5 * time.Minute)) {
		return conn.AccessToken, nil
	}

	logger.Info("CalendarService:EnsureValidToken:Refreshing", "email", conn.Email)

	stale := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		Expiry:       conn.TokenExpiresAt,
	}
	fresh, err := s.oauthConfig().TokenSource(ctx, stale).Token()
	if err != nil {
		return "", errors.NewAppError(errors.ErrUpstreamUnavailable,
			fmt.Sprintf("failed to refresh token for %s", conn.Email), err)
	}

	conn.AccessToken = fresh.AccessToken
	if fresh.RefreshToken != "" {
		conn.RefreshToken = fresh.RefreshToken
	}
	conn.TokenExpiresAt = fresh.Expiry

	if err := s.repo.UpdateToken(ctx, conn); err != nil {
		logger.Warn("CalendarService:EnsureValidToken:PersistFailed", "email", conn.Email, "error", err)
	}
	return fresh.AccessToken, nil
}

func (s *calendarService) callFreeBusy(ctx context.Context, accessToken string, emails []string, start, end time.Time) ([]dto.BusyBlock, *errors.AppError) {
	items := make([]map[string]string, len(emails))
	for i, email := range emails {
		items[i] = map[string]string{"id": email}
	}
	payload := map[string]any{
		"timeMin": start.Format(time.RFC3339),
		"timeMax": end.Format(time.RFC3339),
		"items":   items,
	}

	payloadJSON, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleFreeBusyAPI, strings.NewReader(string(payloadJSON)))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to build freebusy request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "freebusy request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("CalendarService:CallFreeBusy:BadStatus", "status", resp.StatusCode, "body", string(body))
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
			fmt.Sprintf("freebusy returned status %d", resp.StatusCode), nil)
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"busy"`
			Errors []struct {
				Domain string `json:"domain"`
				Reason string `json:"reason"`
			} `json:"errors"`
			TimeZone string `json:"timeZone"`
		} `json:"calendars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "failed to decode freebusy response", err)
	}

	var blocks []dto.BusyBlock
	for _, email := range emails {
		cal, ok := result.Calendars[email]
		if !ok {
			return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
				fmt.Sprintf("freebusy response missing calendar %s", email), nil)
		}
		if len(cal.Errors) > 0 {
			return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
				fmt.Sprintf("freebusy failed for %s: %s", email, cal.Errors[0].Reason), nil)
		}
		for _, busy := range cal.Busy {
			blockStart, err1 := time.Parse(time.RFC3339, busy.Start)
			blockEnd, err2 := time.Parse(time.RFC3339, busy.End)
			if err1 != nil || err2 != nil {
				return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
					fmt.Sprintf("freebusy returned unparsable interval for %s", email), nil)
			}
			blocks = append(blocks, dto.BusyBlock{
				Email:    email,
				Start:    blockStart,
				End:      blockEnd,
				TimeZone: cal.TimeZone,
			})
		}
	}
	return blocks, nil
}
