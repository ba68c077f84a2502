package smtp

import (
	"bytes"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	Send(to, subject, body string) error
}

func Connect(user, password, host, port, senderName string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		senderName: senderName,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	senderName string
	tlsEnabled bool
}

// Send delivers the message synchronously. An unconfigured client logs a
// warning and reports success so callers never fail on a missing mail setup.
func (i impl) Send(to, subject, body string) (err error) {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", i.user, i.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.AddAlternative("text/html", "<p>"+strings.ReplaceAll(body, "\n", "<br>")+"</p>")

	buf := new(bytes.Buffer)
	if _, err = msg.WriteTo(buf); err != nil {
		return errors.Wrap(err, "failed to build email message")
	}

	auth := sasl.NewPlainClient("", i.user, i.password)
	sendTo := []string{
		to,
	}
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, buf)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, buf)
	}
	if err != nil {
		log.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}
