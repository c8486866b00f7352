package discordutil

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

const fiveMin = 5 * time.Minute

type Paginator struct {
	session     *discordgo.Session
	channelID   string
	userID      string
	currentPage *int
	pageLen     int
	totalPages  int
	timeout     time.Duration
	stopOnce    sync.Once
	stopChan    chan struct{}
}

func (p *Paginator) TotalPages() int {
	return p.totalPages
}

// The [start, end) slice bounds of the current page given totalItems.
func (p *Paginator) CurrentPageBounds(totalItems int) (start, end int) {
	start = *p.currentPage * p.pageLen
	end = min(start+p.pageLen, totalItems)

	return
}

type InteractionPageFunc func(curPage, pageLen int, data *discordgo.InteractionResponseData)

type InteractionPaginator struct {
	*Paginator
	interaction *discordgo.Interaction
	messageID   string
	cache       map[int]*discordgo.InteractionResponseData
	PageFunc    InteractionPageFunc
}

func NewInteractionPaginator(s *discordgo.Session, i *discordgo.Interaction, totalItems, pageLen int) *InteractionPaginator {
	author := UserFromInteraction(i)

	initPage := 0
	totalPages := (totalItems + pageLen - 1) / pageLen // round to next largest int (ceil)

	return &InteractionPaginator{
		interaction: i,
		cache:       make(map[int]*discordgo.InteractionResponseData),
		Paginator: &Paginator{
			session:     s,
			channelID:   i.ChannelID,
			userID:      author.ID,
			currentPage: &initPage,
			pageLen:     pageLen,
			totalPages:  totalPages,
			timeout:     fiveMin,
			stopChan:    make(chan struct{}),
		},
	}
}

func (p *InteractionPaginator) NewNavigationButtonRow() discordgo.ActionsRow {
	curPage := *p.currentPage

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "<<",
				CustomID: "first",
				Style:    discordgo.PrimaryButton,
				Disabled: curPage == 0,
			},
			discordgo.Button{
				Label:    "<",
				CustomID: "prev",
				Style:    discordgo.SuccessButton,
				Disabled: curPage == 0,
			},
			discordgo.Button{
				Label:    ">",
				CustomID: "next",
				Style:    discordgo.SuccessButton,
				Disabled: curPage == p.TotalPages()-1,
			},
			discordgo.Button{
				Label:    ">>",
				CustomID: "last",
				Style:    discordgo.PrimaryButton,
				Disabled: curPage == p.TotalPages()-1,
			},
		},
	}
}

func (p *InteractionPaginator) getPageData(page int) *discordgo.InteractionResponseData {
	data, ok := p.cache[page]
	if !ok {
		// Page not already cached, render page and cache.
		data = &discordgo.InteractionResponseData{}
		p.PageFunc(page, p.pageLen, data)
		p.cache[page] = data
	}

	return data
}

func (p *InteractionPaginator) Start() error {
	data := p.getPageData(*p.currentPage)
	err := p.session.InteractionRespond(p.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return err
	}

	// The component events carry the message id, not the interaction id, so
	// resolve the sent message before listening.
	msg, err := p.session.InteractionResponse(p.interaction)
	if err != nil {
		return err
	}
	p.messageID = msg.ID

	go p.beginButtonListener()
	return nil
}

// Only reacts to this paginator's own navigation row, pressed by the user the
// paginator was created for. Everything else belongs to another listener.
func (p *InteractionPaginator) onComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionMessageComponent {
		return
	}
	if ic.Message == nil || ic.Message.ID != p.messageID {
		return
	}
	if UserFromInteraction(ic.Interaction).ID != p.userID {
		return
	}

	curPage, ok := pageAfter(ic.MessageComponentData().CustomID, *p.currentPage, p.totalPages)
	if !ok {
		return
	}

	*p.currentPage = curPage

	data := p.getPageData(curPage)
	s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	})
}

func (p *InteractionPaginator) beginButtonListener() {
	remove := p.session.AddHandler(p.onComponent)
	defer remove()

	select {
	case <-time.After(p.timeout):
	case <-p.stopChan:
	}
}

func pageAfter(buttonID string, cur, total int) (int, bool) {
	switch buttonID {
	case "first":
		return 0, true
	case "prev":
		return max(cur-1, 0), true
	case "next":
		return min(cur+1, total-1), true
	case "last":
		return total - 1, true
	}

	return cur, false
}

func (p *Paginator) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
}
