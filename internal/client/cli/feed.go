package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpetrovs/ember/internal/client/device"
	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/nav"
)

// ShowFeed opens the discovery screen. The first visit fetches page one;
// later visits reuse the queue as-is so already-seen candidates keep their
// position. The candidate on top of the queue is rendered as a card.
func (a *App) ShowFeed(ctx context.Context) error {
	if a.goTo(nav.RouteHome) != nav.RouteHome {
		return nil
	}

	if len(a.feed.Items()) == 0 {
		if err := a.feed.Fetch(ctx, 1, false); err != nil {
			fmt.Printf("Could not load the feed: %v\n", err)
			return err
		}
	}

	a.printTopCandidate()
	return nil
}

// Like swipes right on the candidate currently on top of the queue.
func (a *App) Like(ctx context.Context) error {
	return a.swipeTop(ctx, true)
}

// Pass swipes left on the candidate currently on top of the queue.
func (a *App) Pass(ctx context.Context) error {
	return a.swipeTop(ctx, false)
}

// More explicitly loads the next feed page.
func (a *App) More(ctx context.Context) error {
	if a.route != nav.RouteHome {
		fmt.Println("Open the feed first")
		return nil
	}
	if !a.feed.HasMore() {
		fmt.Println("No more candidates")
		return nil
	}
	if err := a.feed.LoadMore(ctx); err != nil {
		fmt.Printf("Could not load more candidates: %v\n", err)
		return err
	}
	a.printTopCandidate()
	return nil
}

func (a *App) swipeTop(ctx context.Context, isLike bool) error {
	if a.route != nav.RouteHome {
		fmt.Println("Open the feed first")
		return nil
	}

	items := a.feed.Items()
	if len(items) == 0 {
		fmt.Println("Nobody left to swipe on")
		return nil
	}

	a.feed.Swipe(ctx, items[0].ID, isLike)
	a.printTopCandidate()
	return nil
}

func (a *App) printTopCandidate() {
	items := a.feed.Items()
	if len(items) == 0 {
		if a.feed.HasMore() {
			fmt.Println("Queue is empty, type 'more' to load the next page")
		} else {
			fmt.Println("No candidates right now, check back later")
		}
		return
	}
	printCandidate(items[0])
}

// printCandidate renders a candidate card. Narrow terminals get a
// compact one-line card; wider ones get the bio and interests too.
func printCandidate(c models.Candidate) {
	size := device.SizeRegular
	if w, err := terminalWidth(); err == nil {
		size = device.Classify(w)
	}

	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	header := fmt.Sprintf("%s, %d", name, c.Age)
	if c.Location != "" {
		header = header + " (" + c.Location + ")"
	}
	if c.Placeholder {
		header = header + " (sample)"
	}
	fmt.Println(header)

	if size == device.SizeCompact {
		return
	}
	if c.Bio != "" {
		fmt.Println(c.Bio)
	}
	if len(c.Interests) > 0 {
		fmt.Println("Interests: " + strings.Join(c.Interests, ", "))
	}
}
