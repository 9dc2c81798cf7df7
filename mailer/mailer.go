package mailer

import (
	"fmt"

	"github.com/Favorjs/e-rights-backend/external/mailgun"
	"github.com/Favorjs/e-rights-backend/mailer/templates"
	"github.com/Favorjs/e-rights-backend/mailer/templates/layouts"
	"github.com/Favorjs/e-rights-backend/mailer/templates/partials"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/models/enum"
	"github.com/Favorjs/e-rights-backend/utils"
	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/Favorjs/e-rights-backend/utils/log"
	humanize "github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	sender    = "APEL Registrars <registrars@apel.com.ng>"
	devSender = "Dev Test <devtest@apel.com.ng>"

	archive    = "rights-archive@apel.com.ng"
	devArchive = "dev-archive@apel.com.ng"
)

type MailType string

const (
	AdminSubmissionAlert    MailType = "admin_submission_alert"
	ShareholderConfirmation MailType = "shareholder_confirmation"
)

func getSender() string {
	if utils.Prod() {
		return sender
	}
	return devSender
}

func getBcc() string {
	if utils.Prod() {
		return archive
	}
	return devArchive
}

func actionLabel(t enum.ActionType) string {
	switch t {
	case enum.FullAcceptance:
		return "Full acceptance"
	case enum.RenunciationPartial:
		return "Renunciation / partial acceptance"
	}
	return string(t)
}

func shares(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.Commaf(f)
}

func naira(d decimal.Decimal) string {
	f, _ := d.Float64()
	return "NGN " + humanize.FormatFloat("#,###.##", f)
}

// SendAdminSubmissionAlert notifies the registrar's back office of a new
// submission.
func SendAdminSubmissionAlert(sub *models.RightsSubmission) error {
	tmplData := struct {
		ShareholderName  string
		RegAccountNumber string
		Reference        string
		Action           string
		SharesAccepted   string
		SharesRenounced  string
		AmountPayable    string
		Email            string
		MobilePhone      string
	}{
		ShareholderName:  sub.ShareholderName,
		RegAccountNumber: sub.RegAccountNumber,
		Reference:        sub.ID,
		Action:           actionLabel(sub.ActionType),
		SharesAccepted:   shares(sub.SharesAccepted),
		SharesRenounced:  shares(sub.SharesRenounced),
		AmountPayable:    naira(sub.AmountPayable),
		Email:            sub.Email,
		MobilePhone:      sub.MobilePhone,
	}

	html, err := templates.ExecuteTemplate(layouts.Base(), partials.AdminSubmissionAlert, tmplData)
	if err != nil {
		return err
	}

	msg := mailgun.Email{
		Sender:    getSender(),
		Subject:   fmt.Sprintf("Rights Issue Submission: %s (%s)", sub.ShareholderName, sub.RegAccountNumber),
		HTML:      html,
		Recipient: env.GetVar("ADMIN_EMAIL"),
		Bcc:       getBcc(),
	}

	if err = mailgun.Send(msg); err != nil {
		log.Error(
			"mailer send error",
			"type", AdminSubmissionAlert,
			"submission", sub.ID,
			"error", err)
	}

	return err
}

// SendShareholderConfirmation acknowledges receipt of the shareholder's
// acceptance form, attaching the completed form when available.
func SendShareholderConfirmation(sub *models.RightsSubmission, attachment *mailgun.Attachment) error {
	tmplData := struct {
		Name             string
		RegAccountNumber string
		Reference        string
		Action           string
		SharesAccepted   string
		AmountPayable    string
		SupportEmail     string
	}{
		Name:             sub.ShareholderName,
		RegAccountNumber: sub.RegAccountNumber,
		Reference:        sub.ID,
		Action:           actionLabel(sub.ActionType),
		SharesAccepted:   shares(sub.SharesAccepted),
		AmountPayable:    naira(sub.AmountPayable),
		SupportEmail:     env.GetVar("SUPPORT_EMAIL"),
	}

	html, err := templates.ExecuteTemplate(layouts.Base(), partials.ShareholderConfirmation, tmplData)
	if err != nil {
		return err
	}

	msg := mailgun.Email{
		Sender:     getSender(),
		Subject:    "We received your rights issue acceptance",
		HTML:       html,
		Recipient:  sub.Email,
		Bcc:        getBcc(),
		Attachment: attachment,
	}

	if err = mailgun.Send(msg); err != nil {
		log.Error(
			"mailer send error",
			"type", ShareholderConfirmation,
			"submission", sub.ID,
			"error", err)
	}

	return err
}
