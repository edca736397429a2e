package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/http/requests"
	"github.com/oarkflow/signup/pkg/http/responses"
	"github.com/oarkflow/signup/pkg/libs"
	"github.com/oarkflow/signup/pkg/models"
	"github.com/oarkflow/signup/pkg/notify"
	"github.com/oarkflow/signup/pkg/objects"
	"github.com/oarkflow/signup/pkg/signup"
	"github.com/oarkflow/signup/pkg/utils"
	"github.com/oarkflow/signup/pkg/validation"
)

func newController(cfg *libs.Config, tl *notify.Timeline) *signup.Controller {
	opts := signup.DefaultOptions()
	opts.NotificationKey = cfg.NotificationKey
	opts.LoginPath = loginPath(cfg)
	opts.SuccessNoticeDelay = cfg.SuccessNoticeDelay
	opts.RedirectDelay = cfg.RedirectDelay
	opts.Log = objects.Log
	return signup.New(objects.Accounts, tl, tl, tl, opts)
}

// loginPath is the configured login page, mounted under the prefix when it
// is the login route served here.
func loginPath(cfg *libs.Config) string {
	if cfg.LoginPath == utils.LoginURI {
		return utils.Path(utils.LoginURI)
	}
	return cfg.LoginPath
}

func SignupPage(c *fiber.Ctx) error {
	cfg := libs.LoadConfig()
	terms := readTerms(c, cfg)
	if c.Query("terms") == "open" {
		terms.ModalOpen = true
	}
	view := newSignupView(cfg, terms)
	if data := flash.Get(c); len(data) > 0 {
		if content, ok := data["notice"].(string); ok && content != "" {
			typ, _ := data["notice_type"].(string)
			view.Notice = &models.Notification{
				Key:     cfg.NotificationKey,
				Type:    models.NotificationType(typ),
				Content: content,
			}
		}
	}
	return responses.Render(c, utils.SignupTemplate, view)
}

func PostSignup(c *fiber.Ctx) error {
	cfg := libs.LoadConfig()
	var req requests.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return renderErrorPage(c, http.StatusBadRequest, "Invalid Form Data",
			"The form data you submitted could not be processed.",
			"Please check that all required fields are filled correctly and try again.",
			fmt.Sprintf("BodyParser error: %v", err), utils.Path(utils.SignupURI))
	}

	tl := notify.NewTimeline()
	ctrl := newController(cfg, tl)
	defer ctrl.Close()
	ctrl.RestoreTerms(readTerms(c, cfg))
	ctrl.ToggleAgreement(req.Agreed())

	res, err := ctrl.Submit(c.UserContext(), req.Registration())
	if err != nil {
		objects.Log.Warn("signup submission failed",
			zap.String("request_id", utils.RequestID(c)),
			zap.String("state", string(res.State)),
			zap.Error(err))
	}

	status := statusFor(res)
	if utils.WantsJSON(c) {
		return c.Status(status).JSON(newResultView(cfg, res, tl))
	}

	view := newSignupView(cfg, ctrl.Terms())
	view.Values = valuesOf(req)
	view.Errors = res.Errors
	view.State = res.State
	if n, ok := tl.Current(cfg.NotificationKey); ok {
		view.Notice = &n
	}
	view.Schedule = newSchedule(tl)
	if r, ok := tl.Redirect(); ok {
		view.Redirect = &r
	}
	c.Status(status)
	return responses.Render(c, utils.SignupTemplate, view)
}

func statusFor(res signup.Result) int {
	if res.Errors != nil {
		return fiber.StatusUnprocessableEntity
	}
	switch res.State {
	case signup.StateSuccess, signup.StateRedirecting:
		return fiber.StatusCreated
	case signup.StateDuplicate:
		return fiber.StatusConflict
	case signup.StateServerError, signup.StateUnexpectedError:
		return fiber.StatusBadGateway
	case signup.StateNetworkError:
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusOK
}

// valuesOf keeps what the form may echo back; passwords never are.
func valuesOf(req requests.SignupRequest) map[string]string {
	return map[string]string{
		"email":    strings.TrimSpace(req.Email),
		"username": req.Username,
		"nickname": req.Nickname,
		"gender":   req.Gender,
	}
}

type signupView struct {
	Title           string
	AppName         string
	Values          map[string]string
	Errors          validation.Errors
	Genders         []models.Gender
	Terms           models.Terms
	TermsTitle      string
	TermsBody       string
	NicknameTooltip string
	NotificationKey string
	LoadingMessage  string
	State           signup.State
	Notice          *models.Notification
	Schedule        schedule
	Redirect        *models.Redirect
}

func newSignupView(cfg *libs.Config, terms models.Terms) *signupView {
	return &signupView{
		Title:           "Sign Up",
		AppName:         cfg.AppName,
		Values:          map[string]string{},
		Genders:         models.Genders,
		Terms:           terms,
		TermsTitle:      signup.TermsTitle,
		TermsBody:       signup.TermsBody,
		NicknameTooltip: signup.NicknameTooltip,
		NotificationKey: cfg.NotificationKey,
		LoadingMessage:  signup.MsgLoading,
		State:           signup.StateIdle,
	}
}

type scheduledNotice struct {
	Key        string                  `json:"key"`
	Type       models.NotificationType `json:"type"`
	Content    string                  `json:"content"`
	OffsetMS   int64                   `json:"offset_ms"`
	DurationMS int64                   `json:"duration_ms"`
}

type scheduledRedirect struct {
	URL      string `json:"url"`
	OffsetMS int64  `json:"offset_ms"`
}

// schedule is what the browser replays after the response arrives.
type schedule struct {
	Notifications []scheduledNotice  `json:"notifications"`
	Redirect      *scheduledRedirect `json:"redirect,omitempty"`
}

func newSchedule(tl *notify.Timeline) schedule {
	s := schedule{Notifications: []scheduledNotice{}}
	for _, n := range tl.Pending() {
		s.Notifications = append(s.Notifications, scheduledNotice{
			Key:        n.Key,
			Type:       n.Type,
			Content:    n.Content,
			OffsetMS:   n.Offset.Milliseconds(),
			DurationMS: n.Duration.Milliseconds(),
		})
	}
	if r, ok := tl.Redirect(); ok {
		s.Redirect = &scheduledRedirect{URL: r.URL, OffsetMS: r.Offset.Milliseconds()}
	}
	return s
}

type resultView struct {
	State    signup.State      `json:"state"`
	Status   int               `json:"upstream_status,omitempty"`
	Errors   validation.Errors `json:"errors,omitempty"`
	Notice   *scheduledNotice  `json:"notice,omitempty"`
	Schedule schedule          `json:"schedule"`
}

func newResultView(cfg *libs.Config, res signup.Result, tl *notify.Timeline) resultView {
	out := resultView{
		State:    res.State,
		Status:   res.Status,
		Errors:   res.Errors,
		Schedule: newSchedule(tl),
	}
	if n, ok := tl.Current(cfg.NotificationKey); ok {
		out.Notice = &scheduledNotice{
			Key:        n.Key,
			Type:       n.Type,
			Content:    n.Content,
			DurationMS: n.Duration.Milliseconds(),
		}
	}
	return out
}
