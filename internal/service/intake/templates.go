package intake

import (
	"fmt"
	"strings"

	"github.com/syedwebdesign/intake_backend/pkg/email"
)

// Template builders take already-sanitized field values. The only
// unsanitized input they accept is the recipient address, which goes into a
// header, not the HTML body.

func buildContactAdminEmail(adminAddr string, safe ContactRequest) email.Message {
	message := strings.ReplaceAll(safe.Message, "\n", "<br>")

	htmlBody := fmt.Sprintf(`
          <h1>New Contact Form Submission</h1>
          <p><strong>From:</strong> %s (%s)</p>
          <p><strong>Subject:</strong> %s</p>
          <h2>Message:</h2>
          <p>%s</p>
          <hr />
          <p style="color: #666; font-size: 12px;">This message was sent from your website contact form.</p>
        `, safe.Name, safe.Email, safe.Subject, message)

	return email.Message{
		To:       []string{adminAddr},
		Subject:  "New Contact Form: " + safe.Subject,
		HTMLBody: htmlBody,
	}
}

func buildContactConfirmationEmail(to string, safe ContactRequest) email.Message {
	message := strings.ReplaceAll(safe.Message, "\n", "<br>")

	htmlBody := fmt.Sprintf(`
          <h1>Thank you for contacting us, %s!</h1>
          <p>We have received your message and will get back to you as soon as possible.</p>
          <p><strong>Your message:</strong></p>
          <blockquote style="border-left: 3px solid #00d4ff; padding-left: 15px; color: #666;">%s</blockquote>
          <p>Best regards,<br>The Syed Web Design &amp; Developers Team</p>
        `, safe.Name, message)

	return email.Message{
		To:       []string{to},
		Subject:  "We received your message!",
		HTMLBody: htmlBody,
	}
}

func buildOnboardingAdminEmail(adminAddr string, safe OnboardingRequest) email.Message {
	subjectName := safe.BusinessName
	if subjectName == "" {
		subjectName = "New Inquiry"
	}

	domain := domainStatusLabel(safe.DomainPreference)
	if safe.ExistingDomain != "" {
		domain += fmt.Sprintf(" (%s)", safe.ExistingDomain)
	}

	htmlBody := fmt.Sprintf(`
          <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <h1 style="color: #00d4ff;">New Website Project Request</h1>

            <h2 style="color: #333; border-bottom: 2px solid #00d4ff; padding-bottom: 10px;">Contact Information</h2>
            <table style="width: 100%%; border-collapse: collapse;">
              <tr><td style="padding: 8px 0;"><strong>Name:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Email:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Phone:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Business:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Type:</strong></td><td>%s</td></tr>
            </table>

            <h2 style="color: #333; border-bottom: 2px solid #00d4ff; padding-bottom: 10px;">Website Goals</h2>
            <table style="width: 100%%; border-collapse: collapse;">
              <tr><td style="padding: 8px 0;"><strong>Purpose:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0; vertical-align: top;"><strong>Target Audience:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0; vertical-align: top;"><strong>Main Goal:</strong></td><td>%s</td></tr>
            </table>

            <h2 style="color: #333; border-bottom: 2px solid #00d4ff; padding-bottom: 10px;">Design Preferences</h2>
            <table style="width: 100%%; border-collapse: collapse;">
              <tr><td style="padding: 8px 0;"><strong>Style:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Colors:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0; vertical-align: top;"><strong>Reference Sites:</strong></td><td>%s</td></tr>
            </table>

            <h2 style="color: #333; border-bottom: 2px solid #00d4ff; padding-bottom: 10px;">Pages &amp; Content</h2>
            <table style="width: 100%%; border-collapse: collapse;">
              <tr><td style="padding: 8px 0; vertical-align: top;"><strong>Required Pages:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Content Status:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0; vertical-align: top;"><strong>Special Features:</strong></td><td>%s</td></tr>
            </table>

            <h2 style="color: #333; border-bottom: 2px solid #00d4ff; padding-bottom: 10px;">Domain &amp; Timeline</h2>
            <table style="width: 100%%; border-collapse: collapse;">
              <tr><td style="padding: 8px 0;"><strong>Domain:</strong></td><td>%s</td></tr>
              <tr><td style="padding: 8px 0;"><strong>Timeline:</strong></td><td>%s</td></tr>
            </table>

            <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 12px;">This project request was submitted from your website.</p>
          </div>
        `,
		safe.FullName, safe.Email, safe.Phone, safe.BusinessName, safe.BusinessType,
		safe.WebsitePurpose, safe.TargetAudience, safe.MainGoal,
		designStyleLabel(safe.DesignStyle), safe.ColorPreference, safe.ReferenceWebsites,
		strings.Join(safe.RequiredPages, ", "), contentStatusLabel(safe.HasContent), safe.SpecialFeatures,
		domain, timelineLabel(safe.Timeline),
	)

	return email.Message{
		To:       []string{adminAddr},
		Subject:  "🚀 New Website Project: " + subjectName,
		HTMLBody: htmlBody,
	}
}

func buildOnboardingConfirmationEmail(to string, safe OnboardingRequest) email.Message {
	htmlBody := fmt.Sprintf(`
          <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
            <div style="text-align: center; margin-bottom: 30px;">
              <h1 style="color: #00d4ff; margin-bottom: 10px;">Welcome, %s!</h1>
              <p style="font-size: 18px; color: #333;">Your website project is officially underway</p>
            </div>

            <div style="background: linear-gradient(135deg, #00d4ff15, #ff00ff15); padding: 30px; border-radius: 15px; margin-bottom: 30px;">
              <h2 style="color: #333; margin-top: 0;">What Happens Next?</h2>
              <ol style="color: #555; line-height: 1.8;">
                <li><strong>Project Review</strong> - Our team is reviewing your requirements right now</li>
                <li><strong>Personal Consultation</strong> - We'll reach out within 24-48 hours to discuss your vision</li>
                <li><strong>Design Concepts</strong> - You'll receive initial design concepts for approval</li>
                <li><strong>Development</strong> - We'll build your website with regular progress updates</li>
                <li><strong>Launch</strong> - Your new website goes live!</li>
              </ol>
            </div>

            <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin-bottom: 30px;">
              <h3 style="color: #333; margin-top: 0;">Your Project Summary</h3>
              <p><strong>Business:</strong> %s</p>
              <p><strong>Website Purpose:</strong> %s</p>
              <p><strong>Design Style:</strong> %s</p>
              <p><strong>Pages Requested:</strong> %s</p>
            </div>

            <p style="color: #555; line-height: 1.6;">
              We're excited to bring your vision to life! If you have any questions or additional ideas,
              feel free to reply to this email or give us a call.
            </p>

            <p style="color: #555; line-height: 1.6;">
              Thank you for choosing Syed Web Design &amp; Development. We look forward to creating
              something amazing together!
            </p>

            <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
              <p style="margin-bottom: 5px;"><strong>Warm regards,</strong></p>
              <p style="color: #00d4ff; font-weight: bold; margin-top: 0;">The Syed Web Design &amp; Development Team</p>
            </div>
          </div>
        `,
		safe.FullName, safe.BusinessName, safe.WebsitePurpose,
		designStyleLabel(safe.DesignStyle), strings.Join(safe.RequiredPages, ", "),
	)

	return email.Message{
		To:       []string{to},
		Subject:  "Welcome to Syed Web Design & Development - Your Project Has Started!",
		HTMLBody: htmlBody,
	}
}
