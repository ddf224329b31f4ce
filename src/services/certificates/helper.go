package certificates

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type certificateData struct {
	StudentName  string
	ActivityName string
	DateRange    string
	IssuedAt     string
}

var certTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Sarabun", "TH Sarabun New", sans-serif; margin: 0; }
  .page { width: 100%; height: 100vh; display: flex; align-items: center; justify-content: center; }
  .frame { border: 6px double #1a3c6e; padding: 48px 72px; text-align: center; }
  h1 { color: #1a3c6e; margin-bottom: 8px; }
  .name { font-size: 28px; font-weight: bold; margin: 24px 0; }
  .detail { font-size: 18px; color: #333; }
  .issued { margin-top: 36px; font-size: 14px; color: #666; }
</style>
</head>
<body>
<div class="page"><div class="frame">
  <h1>เกียรติบัตร</h1>
  <p class="detail">มอบให้เพื่อแสดงว่า</p>
  <p class="name">{{.StudentName}}</p>
  <p class="detail">ได้เข้าร่วมกิจกรรม</p>
  <p class="name">{{.ActivityName}}</p>
  <p class="detail">เมื่อวันที่ {{.DateRange}}</p>
  <p class="issued">ออกให้ ณ วันที่ {{.IssuedAt}}</p>
</div></div>
</body>
</html>`))

func buildCertificateHTML(data certificateData) (string, error) {
	var buf bytes.Buffer
	if err := certTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// อายุการ render ตั้งได้ผ่าน CERT_RENDER_TIMEOUT (ค่าตั้งต้น 60s)
func renderTimeout() time.Duration {
	if v := os.Getenv("CERT_RENDER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return 60 * time.Second
}

// printHTMLToPDF เปิด headless browser แล้วสั่งพิมพ์หน้าเกียรติบัตรเป็น PDF แนวนอน A4
func printHTMLToPDF(html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout())
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true), // ถ้ารันใน container เป็น root ให้เปิดอันนี้
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(11.69).
				WithPaperHeight(8.27).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("certificate render failed: %v", err)
	}
	return pdf, nil
}
