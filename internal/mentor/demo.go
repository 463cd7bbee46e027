package mentor

import (
	"context"
	"math/rand/v2"
	"time"
)

var demoReplies = []string{
	"Untuk meningkatkan engagement, fokuslah pada konten interaktif dan gunakan CTA yang jelas.",
	"Analisis kompetitor adalah langkah awal yang baik. Coba lihat apa yang berhasil untuk mereka.",
	"Konsistensi dalam posting sangat penting untuk membangun audiens yang loyal. Buatlah jadwal konten.",
	"Gunakan visual yang menarik! Gambar dan video pendek seringkali lebih efektif daripada teks saja.",
}

// DemoService simulates the live mentor without credentials: it waits and
// then returns one of a few canned tips.
type DemoService struct {
	delay time.Duration
	pick  func(n int) int
}

// NewDemoService creates a demo responder. pick chooses a reply index in
// [0, n); nil uses math/rand.
func NewDemoService(delay time.Duration, pick func(n int) int) *DemoService {
	if pick == nil {
		pick = rand.IntN
	}
	return &DemoService{delay: delay, pick: pick}
}

// Reply ignores the prompt. It returns ctx.Err() if cancelled during the delay.
func (d *DemoService) Reply(ctx context.Context, _ string) (string, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return demoReplies[d.pick(len(demoReplies))], nil
}
