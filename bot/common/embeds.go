package common

import (
	"fmt"
	"strings"

	"nsgo/api/objs"
	"nsgo/bot/database"
	"nsgo/bot/discordutil"
	"nsgo/utils"

	"github.com/samber/lo"

	dgo "github.com/bwmarrin/discordgo"
)

var EmbedField = discordutil.EmbedField

func deref(s *string) string {
	return lo.FromPtr(s)
}

// Creates a single embed given nation data. This is the output from `/nation query`.
//
// Expects the nation to carry at least the standard shard set requested by the command,
// missing fields degrade to placeholders rather than panic.
func NewNationEmbed(n *objs.Nation) *dgo.MessageEmbed {
	name := deref(n.FullName)
	if name == "" {
		name = deref(n.Name)
	}

	population := "Unknown"
	if n.Population != nil {
		// API reports population in millions.
		population = utils.HumanizedSprintf("`%d` million", *n.Population)
	}

	waStatus := deref(n.WAStatus)
	if waStatus == "" {
		waStatus = "Unknown"
	}

	embed := &dgo.MessageEmbed{
		Type:  dgo.EmbedTypeRich,
		Color: discordutil.DARK_AQUA,
		Title: fmt.Sprintf("Nation Info | `%s`", name),
		Fields: []*dgo.MessageEmbedField{
			EmbedField("Category", lo.Ternary(n.Category == nil, "Unknown", deref(n.Category)), true),
			EmbedField("Region", lo.Ternary(n.Region == nil, "Unknown", deref(n.Region)), true),
			EmbedField("Population", population, true),
			EmbedField("Currency", lo.Ternary(n.Currency == nil, "Unknown", deref(n.Currency)), true),
			EmbedField("Animal", lo.Ternary(n.Animal == nil, "Unknown", deref(n.Animal)), true),
			EmbedField("WA Status", waStatus, true),
		},
	}

	if n.Motto != nil {
		embed.Description = fmt.Sprintf("*\"%s\"*", *n.Motto)
	}
	if n.Flag != nil {
		embed.Thumbnail = &dgo.MessageEmbedThumbnail{URL: *n.Flag}
	}
	if n.Freedom != nil {
		freedoms := fmt.Sprintf(
			"Civil Rights: `%s`\nEconomy: `%s`\nPolitical Freedom: `%s`",
			n.Freedom.CivilRights, n.Freedom.Economy, n.Freedom.PoliticalFreedom,
		)

		discordutil.AddField(embed, "Freedoms", freedoms, false)
	}
	if n.FoundedTime != nil && *n.FoundedTime > 0 {
		discordutil.AddField(embed, "Founded", fmt.Sprintf("<t:%d:R>", *n.FoundedTime), true)
	}
	if n.LastLogin != nil && *n.LastLogin > 0 {
		discordutil.AddField(embed, "Last Active", fmt.Sprintf("<t:%d:R>", *n.LastLogin), true)
	}

	return embed
}

// Creates a single embed given region data. This is the output from `/region query`.
func NewRegionEmbed(r *objs.Region) *dgo.MessageEmbed {
	numNations := "Unknown"
	if r.NumNations != nil {
		numNations = utils.HumanizedSprintf("`%d`", *r.NumNations)
	}

	delegate := deref(r.Delegate)
	if delegate == "" || delegate == "0" {
		delegate = "None"
	}

	founder := deref(r.Founder)
	if founder == "" || founder == "0" {
		founder = "None"
	}

	embed := &dgo.MessageEmbed{
		Type:  dgo.EmbedTypeRich,
		Color: discordutil.DARK_GREEN,
		Title: fmt.Sprintf("Region Info | `%s`", deref(r.Name)),
		Fields: []*dgo.MessageEmbedField{
			EmbedField("Nations", numNations, true),
			EmbedField("Delegate", delegate, true),
			EmbedField("Founder", founder, true),
		},
	}

	if r.Flag != nil && *r.Flag != "" {
		embed.Thumbnail = &dgo.MessageEmbedThumbnail{URL: *r.Flag}
	}
	if len(r.Tags) > 0 {
		discordutil.AddField(embed, fmt.Sprintf("Tags [%d]", len(r.Tags)), fmt.Sprintf("```%s```", strings.Join(r.Tags, ", ")), false)
	}
	if r.Power != nil {
		discordutil.AddField(embed, "Power", *r.Power, true)
	}
	if r.FoundedTime != nil && *r.FoundedTime > 0 {
		discordutil.AddField(embed, "Founded", fmt.Sprintf("<t:%d:R>", *r.FoundedTime), true)
	}

	return embed
}

// Creates a single embed for a WA proposal still gathering approvals.
func NewProposalEmbed(p objs.WAProposal) *dgo.MessageEmbed {
	embed := &dgo.MessageEmbed{
		Type:  dgo.EmbedTypeRich,
		Color: discordutil.BLURPLE,
		Title: fmt.Sprintf("WA Proposal | `%s`", p.Title),
		Fields: []*dgo.MessageEmbedField{
			EmbedField("Author", p.Author, true),
			EmbedField("Category", p.Category, true),
			EmbedField("Approvals", utils.HumanizedSprintf("`%d`", len(p.Approvals)), true),
		},
	}

	if p.Created > 0 {
		discordutil.AddField(embed, "Submitted", fmt.Sprintf("<t:%d:R>", p.Created), true)
	}

	return embed
}

// Creates a single embed for a tracked debate, including its vote momentum
// when more than one snapshot exists. This is the output from `/debates show`.
func NewDebateEmbed(d *database.Debate) *dgo.MessageEmbed {
	embed := &dgo.MessageEmbed{
		Type:  dgo.EmbedTypeRich,
		Color: discordutil.GOLD,
		Title: fmt.Sprintf("Debate | `%s`", d.Title),
		Fields: []*dgo.MessageEmbedField{
			EmbedField("Author", d.Author, true),
			EmbedField("Category", d.Category, true),
			EmbedField("Approvals", utils.HumanizedSprintf("`%d`", d.Approvals), true),
			EmbedField("First Seen", fmt.Sprintf("<t:%d:R>", d.FirstSeen), true),
			EmbedField("Last Refresh", fmt.Sprintf("<t:%d:R>", d.LastSeen), true),
		},
	}

	if n := len(d.VoteHistory); n > 0 {
		latest := d.VoteHistory[n-1]
		votes := utils.HumanizedSprintf("For: `%d`\nAgainst: `%d`", latest.VotesFor, latest.VotesAgainst)

		if n > 1 {
			prev := d.VoteHistory[n-2]
			votes += utils.HumanizedSprintf(
				"\nSince last snapshot: `%+d` for, `%+d` against",
				latest.VotesFor-prev.VotesFor, latest.VotesAgainst-prev.VotesAgainst,
			)
		}

		discordutil.AddField(embed, "Votes", votes, false)
	}

	return embed
}

// Creates a single embed for the resolution currently at vote in a council.
func NewResolutionEmbed(r *objs.Resolution, council string) *dgo.MessageEmbed {
	embed := &dgo.MessageEmbed{
		Type:  dgo.EmbedTypeRich,
		Color: discordutil.DARK_PURPLE,
		Title: fmt.Sprintf("%s | At Vote: `%s`", council, r.Title),
		Fields: []*dgo.MessageEmbedField{
			EmbedField("Author", r.Author, true),
			EmbedField("Category", r.Category, true),
			EmbedField("Votes For", utils.HumanizedSprintf("`%d`", r.VotesFor), true),
			EmbedField("Votes Against", utils.HumanizedSprintf("`%d`", r.VotesAgainst), true),
		},
	}

	if r.Promoted > 0 {
		discordutil.AddField(embed, "At Vote Since", fmt.Sprintf("<t:%d:R>", r.Promoted), true)
	}

	return embed
}
