package discordutil

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func newTestPaginator(t *testing.T) *InteractionPaginator {
	t.Helper()

	s, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatal(err)
	}

	p := NewInteractionPaginator(s, &discordgo.Interaction{
		User: &discordgo.User{ID: "owner"},
	}, 25, 5)
	p.messageID = "paginated-msg"

	return p
}

func componentPress(messageID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionMessageComponent,
			Message: &discordgo.Message{ID: messageID},
			User:    &discordgo.User{ID: userID},
		},
	}
}

func TestPaginatorIgnoresForeignMessages(t *testing.T) {
	p := newTestPaginator(t)
	*p.currentPage = 2

	p.onComponent(nil, componentPress("someone-elses-msg", "owner"))

	if *p.currentPage != 2 {
		t.Errorf("Expected page '2' but got '%d'", *p.currentPage)
	}
}

func TestPaginatorIgnoresOtherUsers(t *testing.T) {
	p := newTestPaginator(t)
	*p.currentPage = 2

	p.onComponent(nil, componentPress("paginated-msg", "intruder"))

	if *p.currentPage != 2 {
		t.Errorf("Expected page '2' but got '%d'", *p.currentPage)
	}
}

func TestPageAfter(t *testing.T) {
	cases := []struct {
		button   string
		cur      int
		expected int
		ok       bool
	}{
		{"first", 3, 0, true},
		{"prev", 3, 2, true},
		{"prev", 0, 0, true},
		{"next", 3, 4, true},
		{"next", 4, 4, true},
		{"last", 0, 4, true},
		{"unrelated", 3, 3, false},
	}

	for _, c := range cases {
		actual, ok := pageAfter(c.button, c.cur, 5)
		if actual != c.expected || ok != c.ok {
			t.Errorf("Expected '%d/%v' for '%s' but got '%d/%v'", c.expected, c.ok, c.button, actual, ok)
		}
	}
}

func TestPaginatorStopEndsListener(t *testing.T) {
	p := newTestPaginator(t)

	done := make(chan struct{})
	go func() {
		p.beginButtonListener()
		close(done)
	}()

	p.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Expected the listener to return after Stop")
	}

	// A second Stop is a no-op, not a panic.
	p.Stop()
}
