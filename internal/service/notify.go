package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/slogx"
)

// Mailer delivers a composed email. Implemented by internal/mail.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// mailDateLayout renders dates the way they appear in email copy, e.g. "June 1, 2025".
const mailDateLayout = "January 2, 2006"

var (
	tripConfirmationTmpl = template.Must(template.New("trip_confirmation").Parse(`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>Você solicitou a criação de uma viagem para <strong>{{.Destination}}</strong> nas datas de <strong>{{.StartsAt}}</strong> até <strong>{{.EndsAt}}</strong>.</p>
  <p>Para confirmar sua viagem, clique no link abaixo:</p>
  <p><a href="{{.Link}}">Confirmar viagem</a></p>
  <p>Caso você não saiba do que se trata esse e-mail, apenas ignore esse e-mail.</p>
</div>`))

	invitationTmpl = template.Must(template.New("invitation").Parse(`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>Você foi convidado(a) para participar de uma viagem para <strong>{{.Destination}}</strong> nas datas de <strong>{{.StartsAt}}</strong> até <strong>{{.EndsAt}}</strong>.</p>
  <p>Para confirmar sua presença na viagem, clique no link abaixo:</p>
  <p><a href="{{.Link}}">Confirmar presença</a></p>
  <p>Caso você não saiba do que se trata esse e-mail, apenas ignore esse e-mail.</p>
</div>`))
)

type mailView struct {
	Destination string
	StartsAt    string
	EndsAt      string
	Link        string
}

// Notifier composes trip emails and hands them to a Mailer.
// Every send is bounded by timeout; transport errors are logged and surfaced
// as domain.ErrNotification so callers decide whether they are fatal.
type Notifier struct {
	mailer     Mailer
	apiBaseURL string
	timeout    time.Duration
}

// NewNotifier constructs a Notifier. apiBaseURL is the public origin used to
// build confirmation links, without a trailing slash.
func NewNotifier(m Mailer, apiBaseURL string, timeout time.Duration) *Notifier {
	return &Notifier{mailer: m, apiBaseURL: apiBaseURL, timeout: timeout}
}

// TripConfirmation asks the owner to confirm a freshly created trip.
func (n *Notifier) TripConfirmation(ctx context.Context, trip domain.Trip, owner domain.Participant) error {
	link := fmt.Sprintf("%s/trips/%s/confirm", n.apiBaseURL, trip.ID)
	email, err := compose(tripConfirmationTmpl, trip, owner, link)
	if err != nil {
		return fmt.Errorf("service.Notifier.TripConfirmation: %w", err)
	}
	email.Subject = fmt.Sprintf("Confirme sua viagem para %s em %s", trip.Destination, trip.StartsAt.Format(mailDateLayout))
	return n.send(ctx, email)
}

// Invitation asks an invitee to confirm their place on a trip.
func (n *Notifier) Invitation(ctx context.Context, trip domain.Trip, p domain.Participant) error {
	link := fmt.Sprintf("%s/participants/%s/confirm", n.apiBaseURL, p.ID)
	email, err := compose(invitationTmpl, trip, p, link)
	if err != nil {
		return fmt.Errorf("service.Notifier.Invitation: %w", err)
	}
	email.Subject = fmt.Sprintf("Confirme sua presença na viagem para %s em %s", trip.Destination, trip.StartsAt.Format(mailDateLayout))
	return n.send(ctx, email)
}

func (n *Notifier) send(ctx context.Context, email domain.Email) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.mailer.Send(ctx, email); err != nil {
		slogx.FromContext(ctx).Error("email delivery failed",
			"to", email.ToAddress,
			"subject", email.Subject,
			"error", err,
		)
		return fmt.Errorf("%w: %v", domain.ErrNotification, err)
	}
	return nil
}

func compose(tmpl *template.Template, trip domain.Trip, to domain.Participant, link string) (domain.Email, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, mailView{
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt.Format(mailDateLayout),
		EndsAt:      trip.EndsAt.Format(mailDateLayout),
		Link:        link,
	})
	if err != nil {
		return domain.Email{}, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return domain.Email{
		ToName:    to.Name,
		ToAddress: to.Email,
		HTML:      buf.String(),
	}, nil
}
