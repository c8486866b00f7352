package objs

import (
	"fmt"

	"nsgo/api/shards"

	"github.com/beevik/etree"
)

// Immutable snapshot of a region, shard-gated like Nation.
type Region struct {
	Banner        *string
	Census        []CensusRecord
	Delegate      *string
	DelegateAuth  *string
	DelegateVotes *int
	Dispatches    []int
	Embassies     []Embassy
	Factbook      *string
	Flag          *string
	Founded       *string
	FoundedTime   *int64
	Founder       *string
	Happenings    []Happening
	History       []Happening
	LastUpdate    *int64
	Messages      []RMBPost
	MostLiked     []NationTally
	MostLikes     []NationTally
	MostPosts     []NationTally
	Name          *string
	Nations       []string
	NumNations    *int
	Officers      []Officer
	Poll          *Poll
	Power         *string
	Tags          []string
	Zombie        *RegionZombie
}

type Embassy struct {
	Region string
	Status string // "" for established, otherwise pending/invited/closing etc.
}

// A nation paired with a count, used by the RMB leaderboard shards.
// Which metric the count measures depends on the shard: posts made, likes
// received (mostliked) or likes handed out (mostlikes).
type NationTally struct {
	Nation string
	Count  int
}

type Officer struct {
	Nation    string
	Office    string
	Authority string
	Appointed int64
	By        string
	Order     int
}

// A single post on the regional message board.
type RMBPost struct {
	ID        int
	Timestamp int64
	Nation    string
	Status    int
	Likes     int
	LikedBy   []string
	Message   string
}

type RegionZombie struct {
	Survivors int
	Zombies   int
	Dead      int
}

type regionDecoder func(r *Region, root *etree.Element) error

// DecodeRegion converts a parsed REGION subtree into a typed snapshot.
func DecodeRegion(root *etree.Element, requested []shards.RegionShard) (*Region, error) {
	r := &Region{}

	for _, sh := range requested {
		dec, ok := regionDecoders[sh]
		if !ok {
			continue
		}

		if err := dec(r, root); err != nil {
			return nil, fmt.Errorf("failed to decode region shard %q: %w", sh, err)
		}
	}

	return r, nil
}

var regionDecoders = map[shards.RegionShard]regionDecoder{
	shards.REGION_BANNER: func(r *Region, root *etree.Element) error {
		r.Banner = strOf(root, "BANNER")
		return nil
	},
	shards.REGION_CENSUS: func(r *Region, root *etree.Element) (err error) {
		r.Census, err = decodeCensus(root.SelectElement("CENSUS"))
		return
	},
	shards.REGION_DELEGATE: func(r *Region, root *etree.Element) error {
		r.Delegate = strOf(root, "DELEGATE")
		return nil
	},
	shards.REGION_DELEGATE_AUTH: func(r *Region, root *etree.Element) error {
		r.DelegateAuth = strOf(root, "DELEGATEAUTH")
		return nil
	},
	shards.REGION_DELEGATE_VOTES: func(r *Region, root *etree.Element) (err error) {
		r.DelegateVotes, err = intOf(root, "DELEGATEVOTES")
		return
	},
	shards.REGION_DISPATCHES: func(r *Region, root *etree.Element) error {
		for _, raw := range delimitedOf(root, "DISPATCHES", ",") {
			id, err := parseInt(raw)
			if err != nil {
				return err
			}

			r.Dispatches = append(r.Dispatches, id)
		}
		return nil
	},
	shards.REGION_EMBASSIES: func(r *Region, root *etree.Element) error {
		embassies := root.SelectElement("EMBASSIES")
		if embassies == nil {
			return nil
		}

		for _, el := range embassies.SelectElements("EMBASSY") {
			r.Embassies = append(r.Embassies, Embassy{
				Region: el.Text(),
				Status: attr(el, "type"),
			})
		}
		return nil
	},
	shards.REGION_FACTBOOK: func(r *Region, root *etree.Element) error {
		r.Factbook = strOf(root, "FACTBOOK")
		return nil
	},
	shards.REGION_FLAG: func(r *Region, root *etree.Element) error {
		r.Flag = strOf(root, "FLAG")
		return nil
	},
	shards.REGION_FOUNDED: func(r *Region, root *etree.Element) error {
		r.Founded = strOf(root, "FOUNDED")
		return nil
	},
	shards.REGION_FOUNDED_TIME: func(r *Region, root *etree.Element) (err error) {
		r.FoundedTime, err = int64Of(root, "FOUNDEDTIME")
		return
	},
	shards.REGION_FOUNDER: func(r *Region, root *etree.Element) error {
		r.Founder = strOf(root, "FOUNDER")
		return nil
	},
	shards.REGION_HAPPENINGS: func(r *Region, root *etree.Element) (err error) {
		r.Happenings, err = decodeHappenings(root.SelectElement("HAPPENINGS"))
		return
	},
	shards.REGION_HISTORY: func(r *Region, root *etree.Element) (err error) {
		r.History, err = decodeHappenings(root.SelectElement("HISTORY"))
		return
	},
	shards.REGION_LAST_UPDATE: func(r *Region, root *etree.Element) (err error) {
		r.LastUpdate, err = int64Of(root, "LASTUPDATE")
		return
	},
	shards.REGION_MESSAGES: func(r *Region, root *etree.Element) error {
		messages := root.SelectElement("MESSAGES")
		if messages == nil {
			return nil
		}

		for _, el := range messages.SelectElements("POST") {
			id, err := attrInt(el, "id")
			if err != nil {
				return err
			}

			post := RMBPost{
				ID:      id,
				Nation:  text(el, "NATION"),
				Message: text(el, "MESSAGE"),
			}

			if raw := text(el, "TIMESTAMP"); raw != "" {
				if post.Timestamp, err = parseInt64(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "STATUS"); raw != "" {
				if post.Status, err = parseInt(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "LIKES"); raw != "" {
				if post.Likes, err = parseInt(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "LIKERS"); raw != "" {
				post.LikedBy = splitNonEmpty(raw, ":")
			}

			r.Messages = append(r.Messages, post)
		}
		return nil
	},
	// mostliked (likes received) and mostlikes (likes given) are distinct
	// shards with distinct wire tags. Each decodes only its own tag.
	shards.REGION_MOST_LIKED: func(r *Region, root *etree.Element) (err error) {
		r.MostLiked, err = decodeNationTallies(root.SelectElement("MOSTLIKED"), "LIKED")
		return
	},
	shards.REGION_MOST_LIKES: func(r *Region, root *etree.Element) (err error) {
		r.MostLikes, err = decodeNationTallies(root.SelectElement("MOSTLIKES"), "LIKES")
		return
	},
	shards.REGION_MOST_POSTS: func(r *Region, root *etree.Element) (err error) {
		r.MostPosts, err = decodeNationTallies(root.SelectElement("MOSTPOSTS"), "POSTS")
		return
	},
	shards.REGION_NAME: func(r *Region, root *etree.Element) error {
		r.Name = strOf(root, "NAME")
		return nil
	},
	shards.REGION_NATIONS: func(r *Region, root *etree.Element) error {
		r.Nations = delimitedOf(root, "NATIONS", ":")
		return nil
	},
	shards.REGION_NUM_NATIONS: func(r *Region, root *etree.Element) (err error) {
		r.NumNations, err = intOf(root, "NUMNATIONS")
		return
	},
	shards.REGION_OFFICERS: func(r *Region, root *etree.Element) error {
		officers := root.SelectElement("OFFICERS")
		if officers == nil {
			return nil
		}

		for _, el := range officers.SelectElements("OFFICER") {
			officer := Officer{
				Nation:    text(el, "NATION"),
				Office:    text(el, "OFFICE"),
				Authority: text(el, "AUTHORITY"),
				By:        text(el, "BY"),
			}

			var err error
			if raw := text(el, "TIME"); raw != "" {
				if officer.Appointed, err = parseInt64(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "ORDER"); raw != "" {
				if officer.Order, err = parseInt(raw); err != nil {
					return err
				}
			}

			r.Officers = append(r.Officers, officer)
		}
		return nil
	},
	shards.REGION_POLL: func(r *Region, root *etree.Element) (err error) {
		r.Poll, err = decodePoll(root.SelectElement("POLL"))
		return
	},
	shards.REGION_POWER: func(r *Region, root *etree.Element) error {
		r.Power = strOf(root, "POWER")
		return nil
	},
	shards.REGION_TAGS: func(r *Region, root *etree.Element) error {
		r.Tags = childTexts(root, "TAGS", "TAG")
		return nil
	},
	shards.REGION_ZOMBIE: func(r *Region, root *etree.Element) error {
		zombie := root.SelectElement("ZOMBIE")
		if zombie == nil {
			return nil
		}

		z := &RegionZombie{}

		var err error
		for tag, target := range map[string]*int{
			"SURVIVORS": &z.Survivors,
			"ZOMBIES":   &z.Zombies,
			"DEAD":      &z.Dead,
		} {
			raw := text(zombie, tag)
			if raw == "" {
				continue
			}
			if *target, err = parseInt(raw); err != nil {
				return err
			}
		}

		r.Zombie = z
		return nil
	},
}

func decodeNationTallies(container *etree.Element, countTag string) ([]NationTally, error) {
	if container == nil {
		return nil, nil
	}

	nations := container.SelectElements("NATION")
	out := make([]NationTally, 0, len(nations))

	for _, el := range nations {
		count, err := parseInt(text(el, countTag))
		if err != nil {
			return nil, err
		}

		out = append(out, NationTally{Nation: text(el, "NAME"), Count: count})
	}

	return out, nil
}
