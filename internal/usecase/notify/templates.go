// Package notify renders the transactional e-mails sent by the booking and
// inquiry flows. html/template escapes every customer-supplied value.
package notify

import (
	"bytes"
	"html/template"
	"strings"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/pkg/errs"
)

const layout = `{{define "layout"}}<div style="font-family:Arial,sans-serif;color:#1f1c17;line-height:1.5">
  <h2 style="margin:0 0 12px 0">{{template "title" .}}</h2>
  {{template "body" .}}
  <p style="margin-top:20px;color:#6d655b">Hotel Atlas</p>
</div>{{end}}`

var (
	bookingAdminTmpl = mustParse(`
{{define "title"}}Nouvelle réservation {{.ID}}{{end}}
{{define "body"}}
  <p><strong>Client:</strong> {{.FullName}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Téléphone:</strong> {{or .Phone "-"}}</p>
  <p><strong>Arrivée:</strong> {{.CheckIn}}</p>
  <p><strong>Départ:</strong> {{.CheckOut}}</p>
  <p><strong>Chambre:</strong> {{.RoomType}}</p>
  <p><strong>Voyageurs:</strong> {{.Guests}}</p>
  <p><strong>Option:</strong> {{.Addons}}</p>
  <p><strong>Total:</strong> {{.Total}} EUR</p>
{{end}}`)

	bookingClientTmpl = mustParse(`
{{define "title"}}Votre réservation est bien enregistrée{{end}}
{{define "body"}}
  <p>Bonjour {{.FullName}},</p>
  <p>Nous confirmons votre réservation <strong>{{.ID}}</strong>.</p>
  <p>Séjour du <strong>{{.CheckIn}}</strong> au <strong>{{.CheckOut}}</strong>.</p>
  <p>Montant estimé: <strong>{{.Total}} EUR</strong>.</p>
  <p>Notre équipe reviendra vers vous si besoin d'informations complémentaires.</p>
{{end}}`)

	contactAdminTmpl = mustParse(`
{{define "title"}}Nouveau message de contact{{end}}
{{define "body"}}
  <p><strong>Nom:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
{{end}}`)

	contactClientTmpl = mustParse(`
{{define "title"}}Message reçu{{end}}
{{define "body"}}
  <p>Bonjour {{.Name}},</p>
  <p>Merci pour votre message. Notre équipe vous répond sous 24h.</p>
{{end}}`)

	newsletterAdminTmpl = mustParse(`
{{define "title"}}Nouvelle inscription newsletter{{end}}
{{define "body"}}
  <p>Nouvelle inscription: <strong>{{.Email}}</strong></p>
{{end}}`)

	newsletterWelcomeTmpl = mustParse(`
{{define "title"}}Bienvenue à la newsletter Hotel Atlas{{end}}
{{define "body"}}
  <p>Votre inscription ({{.Email}}) est confirmée.</p>
  <p>Vous recevrez nos offres privées et inspirations voyage.</p>
{{end}}`)
)

func mustParse(blocks string) *template.Template {
	return template.Must(template.Must(template.New("email").Parse(layout)).Parse(blocks))
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", errs.Wrap(err, "render email")
	}
	return buf.String(), nil
}

type bookingView struct {
	ID       string
	FullName string
	Email    string
	Phone    string
	CheckIn  string
	CheckOut string
	RoomType string
	Guests   int
	Addons   string
	Total    int64
}

func newBookingView(b *booking.Booking) bookingView {
	req := b.Request()
	cust := b.Customer()
	return bookingView{
		ID:       b.ID(),
		FullName: cust.FullName,
		Email:    cust.Email,
		Phone:    cust.Phone,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		RoomType: req.RoomType,
		Guests:   req.Guests,
		Addons:   strings.Join(req.Addons, ", "),
		Total:    b.Estimate().Total.RoundedEuros(),
	}
}

// Message is a rendered e-mail without its recipient.
type Message struct {
	Subject string
	HTML    string
}

func BookingAdmin(b *booking.Booking) (Message, error) {
	html, err := render(bookingAdminTmpl, newBookingView(b))
	return Message{Subject: "Nouvelle réservation " + b.ID() + " - Hotel Atlas", HTML: html}, err
}

func BookingClient(b *booking.Booking) (Message, error) {
	html, err := render(bookingClientTmpl, newBookingView(b))
	return Message{Subject: "Confirmation de réservation " + b.ID(), HTML: html}, err
}

func ContactAdmin(name, email, message string) (Message, error) {
	html, err := render(contactAdminTmpl, map[string]string{"Name": name, "Email": email, "Message": message})
	return Message{Subject: "Nouveau message de contact - Hotel Atlas", HTML: html}, err
}

func ContactClient(name string) (Message, error) {
	html, err := render(contactClientTmpl, map[string]string{"Name": name})
	return Message{Subject: "Nous avons bien reçu votre message", HTML: html}, err
}

func NewsletterAdmin(email string) (Message, error) {
	html, err := render(newsletterAdminTmpl, map[string]string{"Email": email})
	return Message{Subject: "Nouvelle inscription newsletter - Hotel Atlas", HTML: html}, err
}

func NewsletterWelcome(email string) (Message, error) {
	html, err := render(newsletterWelcomeTmpl, map[string]string{"Email": email})
	return Message{Subject: "Bienvenue a la newsletter Hotel Atlas", HTML: html}, err
}
