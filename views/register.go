package views

import (
	"context"
	"fmt"
	"io"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/a-h/templ"
)

func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title></head><body>", templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// RegistrationPage is the public form reached through a shareable link.
func RegistrationPage(hostel *event.Hostel, team *event.Team, linkID string) templ.Component {
	return page("Player Registration", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s %s team registration</h1>
<form method="post" action="/register/%s" enctype="multipart/form-data">
<label>Name <input type="text" name="name" required></label>
<label>Position <input type="text" name="position" required></label>
<label>Jersey Number <input type="number" name="jerseyNumber" min="0" required></label>
<label>Mobile Number <input type="tel" name="mobileNumber" pattern="[0-9]{10}" required></label>
<label>T-shirt Size <select name="tshirtSize">
<option>XS</option><option>S</option><option selected>M</option>
<option>L</option><option>XL</option><option>XXL</option>
</select></label>
<label>Photo (max 2MB) <input type="file" name="photo" accept="image/*"></label>
<button type="submit">Register</button>
</form>`,
			templ.EscapeString(hostel.Name),
			templ.EscapeString(string(team.Sport)),
			templ.EscapeString(linkID))
		return err
	})
}

func RegistrationError(msg string) templ.Component {
	return page("Player Registration", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Registration unavailable</h1><p>%s</p>", templ.EscapeString(msg))
		return err
	})
}

func RegistrationSuccess() templ.Component {
	return page("Registration Received", func(w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Registration received</h1><p>Your registration is pending approval by the team manager.</p>")
		return err
	})
}

// HomePage is the signed-in landing page; login and OAuth callbacks redirect
// here.
func HomePage(username string) templ.Component {
	return page("Event Dashboard", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Sports Event Manager</h1>
<p>Signed in as %s.</p>
<ul>
<li><a href="/api/hostels">Hostels</a></li>
<li><a href="/api/matches">Matches</a></li>
<li><a href="/api/ledger">Ledger</a></li>
<li><a href="/api/volunteers">Volunteers</a></li>
</ul>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>`,
			templ.EscapeString(username))
		return err
	})
}

func LoginPage() templ.Component {
	return page("Sign In", func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Sign in</h1>
<form method="post" action="/login">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
<p><a href="/auth/google">Sign in with Google</a></p>`)
		return err
	})
}
