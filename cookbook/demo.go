package cookbook

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"cookbook-manager/config"
)

// DateLayout is the format of the borrow date the demo records.
const DateLayout = "2006-01-02"

// RunDemo opens the catalog, records one borrow, plans one photoshoot and
// closes. Failures after a successful open are printed and skipped.
func RunDemo(dbPath string, demo config.Demo, out io.Writer, log *zap.Logger, now func() time.Time) {
	mgr, err := NewManager(dbPath, out, log)
	if err != nil {
		fmt.Fprintln(out, "Error! Unable to establish a database connection.")
		return
	}
	_ = mgr.EnsureSchema()

	fmt.Fprintln(out, "\nTracking a borrowed cookbook...")
	_ = mgr.TrackBorrow(demo.BorrowCookbookID, demo.Friend, now().Format(DateLayout))

	fmt.Fprintln(out, "\nGenerating a photoshoot plan...")
	_ = mgr.PlanPhotoshoot(demo.PhotoshootCookbookID)

	if err := mgr.Close(); err != nil {
		log.Warn("close database", zap.Error(err))
	}
	fmt.Fprintln(out, "\nDatabase connection closed.")
}
