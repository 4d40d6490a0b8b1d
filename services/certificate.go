package services

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shehub/config"
	"shehub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// certNumberAttempts bounds the retry loop on certificate number
// collisions. The number space is 16^8, so a second attempt is already
// very unlikely; the issuer retries, callers never do.
const certNumberAttempts = 5

var certTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
	<style>
		body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: #fff0f5; }
		.certificate { max-width: 800px; margin: 0 auto; background: white; border: 10px solid #ff69b4; padding: 40px; text-align: center; }
		h1 { color: #ff1493; font-size: 48px; margin-bottom: 20px; }
		h2 { color: #ff69b4; font-size: 32px; }
		.name { font-size: 40px; color: #ff1493; margin: 30px 0; font-weight: bold; }
		.course { font-size: 28px; color: #ff69b4; margin: 20px 0; }
		.meta { font-size: 18px; color: #666; margin-top: 40px; }
	</style>
</head>
<body>
	<div class="certificate">
		<h1>Certificate of Completion</h1>
		<h2>This is to certify that</h2>
		<div class="name">{{.UserName}}</div>
		<h2>has successfully completed the course</h2>
		<div class="course">{{.CourseTitle}}</div>
		<div class="meta">Completed on: {{.CompletedOn}} &middot; {{.Number}}</div>
	</div>
</body>
</html>
`))

// newCertificateNumber mints an opaque short token like CERT-9F3A01BC.
// The first 8 characters of a v4 UUID are plain hex.
func newCertificateNumber() string {
	return "CERT-" + strings.ToUpper(uuid.NewString()[:8])
}

// IssueCertificate mints a certificate for a completed course and writes
// the downloadable artifact. It must run inside the caller's transaction:
// if the artifact cannot be written or the row cannot be stored, the
// whole progress transition rolls back with it.
func IssueCertificate(tx *gorm.DB, user *models.User, course *models.Course, completedAt time.Time) (*models.Certificate, error) {
	var cert *models.Certificate

	for attempt := 0; attempt < certNumberAttempts; attempt++ {
		number := newCertificateNumber()

		var count int64
		if err := tx.Model(&models.Certificate{}).Where("certificate_number = ?", number).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			continue // collision, mint again
		}

		cert = &models.Certificate{
			UserID:            user.ID,
			CourseID:          course.ID,
			CertificateNumber: number,
			IssuedDate:        completedAt,
		}
		break
	}
	if cert == nil {
		return nil, fmt.Errorf("could not generate a unique certificate number after %d attempts", certNumberAttempts)
	}

	filename, err := writeCertificateFile(user.Name, course.Title, cert.CertificateNumber, completedAt)
	if err != nil {
		return nil, err
	}
	cert.DownloadURL = "/certificates/" + filename

	if err := tx.Create(cert).Error; err != nil {
		return nil, err
	}

	return cert, nil
}

// writeCertificateFile renders the HTML certificate into the configured
// certificate directory and returns the file name.
func writeCertificateFile(userName, courseTitle, number string, completedAt time.Time) (string, error) {
	dir := config.AppConfig.CertificateDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("cert_%s.html", strings.ToLower(strings.TrimPrefix(number, "CERT-")))
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	data := struct {
		UserName    string
		CourseTitle string
		CompletedOn string
		Number      string
	}{
		UserName:    userName,
		CourseTitle: courseTitle,
		CompletedOn: completedAt.Format("January 2, 2006"),
		Number:      number,
	}

	if err := certTemplate.Execute(f, data); err != nil {
		return "", err
	}

	return filename, nil
}
