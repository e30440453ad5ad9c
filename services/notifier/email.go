package notifiersvc

import (
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/notification"
	"github.com/trezcool/shule/core/user"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// emailSender adapts the sendgrid mail API to the notification.Sender contract.
type emailSender struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
	usrSvc     *user.Service
}

var _ notification.Sender = (*emailSender)(nil)

func NewEmailSender(usrSvc *user.Service) notification.Sender {
	from := core.Conf.DefaultFromEmail()
	return &emailSender{
		key:        core.Conf.SendgridApiKey,
		from:       sgmail.NewEmail(from.Name, from.Address),
		subjPrefix: "[" + core.Conf.AppName + "] ",
		usrSvc:     usrSvc,
	}
}

func (svc *emailSender) Send(userID, title, message string, typ notification.Type) (notification.Notification, error) {
	usr, err := svc.usrSvc.GetByID(userID)
	if err != nil {
		return notification.Notification{}, errors.Wrap(err, "resolving recipient")
	}

	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(svc.prepare(mail.Address{Name: usr.Name, Address: usr.Email}, title, message))

	res, err := sendgrid.API(req)
	if err != nil {
		return notification.Notification{}, errors.Wrap(err, "sending email")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return notification.Notification{}, errors.Errorf("sending email - status: %d - Body: %s", res.StatusCode, res.Body)
	}

	return notification.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (svc *emailSender) prepare(to mail.Address, title, message string) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + title
	p.AddTos(sgmail.NewEmail(to.Name, to.Address))

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", message))
	return m
}
