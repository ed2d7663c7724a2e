// Package mailer renders templated emails and hands them to a provider.
//
// The package separates delivery (Sender) from rendering (Renderer), so a
// provider can be swapped without touching templates.
//
//   - Sender: interface that email providers implement
//   - Renderer: executes html/template bodies with YAML frontmatter inside a layout
//   - Mailer: combines Sender and Renderer
//
// # Templates
//
// A template is an HTML file with optional frontmatter:
//
//	---
//	Subject: "[Form] {{.Subject}}"
//	---
//	<p>{{nl2br .Content}}</p>
//
// The Subject value is executed as a text template against the same data.
// Bodies are html/template, so every interpolated value is escaped. The
// nl2br function escapes its argument and converts line breaks to <br>.
//
// A sibling file with a .txt extension ("inquiry.txt" next to
// "inquiry.html") is rendered as the plain-text part when present.
//
// Layouts receive {{.Content}} (the rendered body) and {{.Metadata}}.
//
// # Sending
//
//	m := mailer.New(sender, mailer.NewRenderer(emails.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		Template: "inquiry.html",
//		Data:     data,
//		Tags:     mailer.Tags{"submission_id": id},
//	})
//
// Errors from the Sender are joined with ErrSendFailed. A provider refusal
// is a *ProviderError carrying the status code and raw response body:
//
//	if pe, ok := mailer.AsProviderError(err); ok {
//		log.Error("rejected", "status", pe.StatusCode, "body", string(pe.Body))
//	}
package mailer
