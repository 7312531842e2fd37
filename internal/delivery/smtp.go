package delivery

import (
	"errors"
	"net"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/jonathan/research-digest/internal/types"
)

// mailerID is set as the X-Mailer header on every outgoing message.
const mailerID = "research-digest/1.0"

// SMTPConfig holds the connection parameters for the submission server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Dispatcher delivers digest messages over SMTP. Connectivity (and
// authentication) are verified by the dial before any message is sent.
type Dispatcher struct {
	cfg SMTPConfig

	// dial is swapped in tests; defaults to a gomail TLS-capable dialer.
	dial func() (gomail.SendCloser, error)
}

// NewDispatcher creates a dispatcher for the given SMTP parameters.
func NewDispatcher(cfg SMTPConfig) *Dispatcher {
	d := &Dispatcher{cfg: cfg}
	d.dial = func() (gomail.SendCloser, error) {
		return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password).Dial()
	}
	return d
}

// Send delivers the message once, one SMTP transaction per recipient over a
// single session. Success means every recipient was accepted; a mixed outcome
// is reported as a PartialDeliveryError.
func (d *Dispatcher) Send(msg *types.EmailMessage) error {
	s, err := d.dial()
	if err != nil {
		return classifyDialError(err)
	}
	defer func() { _ = s.Close() }()

	accepted := make([]string, 0, len(msg.To))
	failed := make(map[string]error)

	for _, rcpt := range msg.To {
		m := buildMessage(msg, rcpt)
		if err := gomail.Send(s, m); err != nil {
			failed[rcpt] = err
		} else {
			accepted = append(accepted, rcpt)
		}
	}

	switch {
	case len(failed) == 0:
		return nil
	case len(accepted) == 0:
		var firstErr error
		for _, err := range failed {
			firstErr = err
			break
		}
		return &SendError{
			Message: "all recipients rejected",
			Cause:   firstErr,
		}
	default:
		return &PartialDeliveryError{
			Accepted: accepted,
			Failed:   failed,
		}
	}
}

// buildMessage constructs the wire message for a single recipient.
func buildMessage(msg *types.EmailMessage, rcpt string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", rcpt)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("X-Mailer", mailerID)
	if !msg.Date.IsZero() {
		m.SetDateHeader("Date", msg.Date)
	}
	m.SetBody("text/plain", msg.TextBody)
	m.AddAlternative("text/html", msg.HTMLBody)
	return m
}

// classifyDialError maps a dial failure onto the delivery error taxonomy so
// operators can tell auth problems from network ones.
func classifyDialError(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return &AuthError{Message: "server rejected credentials", Cause: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Message: "dial timed out", Cause: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || strings.Contains(err.Error(), "connection refused") {
		return &ConnectionError{Message: "could not reach server", Cause: err}
	}

	if strings.Contains(strings.ToLower(err.Error()), "auth") {
		return &AuthError{Message: "authentication failed", Cause: err}
	}

	return &ConnectionError{Message: "dial failed", Cause: err}
}
