package certificates

import (
	"testing"

	"Backend-ClubHub/src/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildCertificateHTML(t *testing.T) {
	html, err := buildCertificateHTML(certificateData{
		StudentName:  "สมชาย ใจดี",
		ActivityName: "Football <Tournament>",
		DateRange:    "2025-06-10 - 2025-06-12",
		IssuedAt:     "15 June 2025",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "สมชาย ใจดี")
	assert.Contains(t, html, "2025-06-10 - 2025-06-12")

	// ชื่อกิจกรรมจากผู้ใช้ต้องถูก escape
	assert.NotContains(t, html, "<Tournament>")
	assert.Contains(t, html, "&lt;Tournament&gt;")
}

func TestFormatDateRange(t *testing.T) {
	single := models.Activity{Date: "2025-06-10"}
	assert.Equal(t, "2025-06-10", formatDateRange(&single))

	multi := models.Activity{Date: "2025-06-10", EndDate: strPtr("2025-06-12")}
	assert.Equal(t, "2025-06-10 - 2025-06-12", formatDateRange(&multi))
}
