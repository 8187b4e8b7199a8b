package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/logger"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/messaging"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/bwmarrin/discordgo"
)

const (
	actionRSVP   = "rsvp"
	actionUpvote = "upvote"

	// Discord caps the choices of one option
	maxChoices = 25
)

// MeetupCommand handles the /meetup command and its buttons
type MeetupCommand struct {
	BaseCommand
	orchestrator orchestrator.Service
	members      *Members
	messages     messaging.Service
	logger       *slog.Logger
}

// MeetupConfig holds what the meetup command needs
type MeetupConfig struct {
	Orchestrator orchestrator.Service
	Members      *Members
	Messages     messaging.Service

	// Moods become the choices of the mood options
	Moods []*models.Mood

	Logger *slog.Logger
}

// invocation is a parsed subcommand
type invocation struct {
	member Member
	sub    string
	opts   map[string]string
}

// NewMeetupCommand creates the /meetup command
func NewMeetupCommand(cfg *MeetupConfig) *MeetupCommand {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, mood := range cfg.Moods {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  mood.Name,
			Value: mood.ID,
		})
	}

	eventOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "event",
			Description: "Event ID",
			Required:    true,
		}
	}

	return &MeetupCommand{
		BaseCommand: BaseCommand{
			Name:        "meetup",
			Description: "Find events that fit your mood",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "events",
					Description: "List upcoming events",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mood",
							Description: "Only events tagged with this mood",
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rsvp",
					Description: "RSVP to an event",
					Options:     []*discordgo.ApplicationCommandOption{eventOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel your RSVP",
					Options:     []*discordgo.ApplicationCommandOption{eventOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "upvote",
					Description: "Upvote an event",
					Options:     []*discordgo.ApplicationCommandOption{eventOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mood",
					Description: "Set how you feel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mood",
							Description: "Your mood",
							Required:    true,
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recommend",
					Description: "Events for your current mood",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "streak",
					Description: "Show an attendance streak",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Whose streak, yours by default",
						},
					},
				},
			},
		},
		orchestrator: cfg.Orchestrator,
		members:      cfg.Members,
		messages:     cfg.Messages,
		logger:       logger.OrDefault(cfg.Logger),
	}
}

// Handle processes a Discord interaction for the meetup command
func (c *MeetupCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	inv := invocation{
		member: memberOf(i),
		sub:    sub.Name,
		opts:   make(map[string]string),
	}
	for _, opt := range sub.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			inv.opts[opt.Name] = opt.Value.(string)
			if data.Resolved != nil {
				if u, ok := data.Resolved.Users[inv.opts[opt.Name]]; ok {
					inv.opts[opt.Name+"_name"] = u.Username
				}
			}
		default:
			inv.opts[opt.Name] = opt.StringValue()
		}
	}

	return respond(s, i, c.run(context.Background(), inv))
}

// HandleComponent processes a button pressed on one of the command's messages
func (c *MeetupCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	action, eventID, ok := parseComponentID(c.Name, i.MessageComponentData().CustomID)
	if !ok {
		return fmt.Errorf("unknown component %q", i.MessageComponentData().CustomID)
	}

	inv := invocation{
		member: memberOf(i),
		sub:    action,
		opts:   map[string]string{"event": eventID},
	}

	reply := c.run(context.Background(), inv)
	// buttons confirm privately so the shared list stays intact
	reply.Flags |= discordgo.MessageFlagsEphemeral

	return respond(s, i, reply)
}

// run executes a subcommand and renders the reply
func (c *MeetupCommand) run(ctx context.Context, inv invocation) *discordgo.InteractionResponseData {
	reply, err := c.dispatch(ctx, inv)
	if err != nil {
		return c.failure(ctx, inv, err)
	}
	return reply
}

func (c *MeetupCommand) dispatch(ctx context.Context, inv invocation) (*discordgo.InteractionResponseData, error) {
	switch inv.sub {
	case "events":
		events, err := c.orchestrator.ListEvents(ctx, &orchestrator.ListEventsInput{
			Status:  models.EventStatusUpcoming,
			MoodTag: inv.opts["mood"],
		})
		if err != nil {
			return nil, err
		}
		return renderEvents("Upcoming events", events), nil

	case actionRSVP:
		var rsvp *models.RSVP
		err := c.withSession(ctx, inv.member, func(token string) (err error) {
			rsvp, err = c.orchestrator.RSVP(ctx, &orchestrator.EventActionInput{Token: token, EventID: inv.opts["event"]})
			return err
		})
		if err != nil {
			return nil, err
		}
		return renderRSVP(rsvp, c.rsvpMessage(ctx, inv.member, rsvp.Event, false)), nil

	case "cancel":
		err := c.withSession(ctx, inv.member, func(token string) error {
			_, err := c.orchestrator.CancelRSVP(ctx, &orchestrator.EventActionInput{Token: token, EventID: inv.opts["event"]})
			return err
		})
		if err != nil {
			return nil, err
		}
		return ephemeralReply(c.rsvpMessage(ctx, inv.member, inv.opts["event"], true)), nil

	case actionUpvote:
		err := c.withSession(ctx, inv.member, func(token string) error {
			_, err := c.orchestrator.Upvote(ctx, &orchestrator.EventActionInput{Token: token, EventID: inv.opts["event"]})
			return err
		})
		if err != nil {
			return nil, err
		}
		count, err := c.orchestrator.CountUpvotes(ctx, &orchestrator.CountUpvotesInput{EventID: inv.opts["event"]})
		if err != nil {
			return nil, err
		}
		return ephemeralReply(fmt.Sprintf("Upvoted! The event now has %d upvotes.", count)), nil

	case "mood":
		err := c.withSession(ctx, inv.member, func(token string) error {
			_, err := c.orchestrator.SelectMood(ctx, &orchestrator.SelectMoodInput{Token: token, MoodID: inv.opts["mood"]})
			return err
		})
		if err != nil {
			return nil, err
		}
		return ephemeralReply(fmt.Sprintf("Mood set to %s.", inv.opts["mood"])), nil

	case "recommend":
		var out *orchestrator.RecommendEventsOutput
		err := c.withSession(ctx, inv.member, func(token string) (err error) {
			out, err = c.orchestrator.RecommendEvents(ctx, &orchestrator.SessionInput{Token: token})
			return err
		})
		if err != nil {
			return nil, err
		}
		return renderRecommendations(out), nil

	case "streak":
		target := inv.member
		if id := inv.opts["user"]; id != "" && id != inv.member.ID {
			target = Member{ID: id, Name: inv.opts["user_name"]}
		}

		userID, err := c.members.Account(ctx, target)
		if err != nil {
			return nil, err
		}
		streak, err := c.orchestrator.GetStreak(ctx, &orchestrator.GetStreakInput{UserID: userID})
		if err != nil {
			return nil, err
		}
		return renderStreak(target.Name, streak, c.streakMessage(ctx, target.Name, streak.Count)), nil
	}

	return nil, apperrors.Invalid("unknown subcommand %q", inv.sub)
}

// withSession runs fn with the member's session token. A session closed
// elsewhere is replaced once.
func (c *MeetupCommand) withSession(ctx context.Context, member Member, fn func(token string) error) error {
	_, token, err := c.members.Resolve(ctx, member)
	if err != nil {
		return err
	}

	err = fn(token)
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		return err
	}

	c.members.Forget(member.ID)
	_, token, err = c.members.Resolve(ctx, member)
	if err != nil {
		return err
	}
	return fn(token)
}

// failure shows classified errors to the member and hides the rest
func (c *MeetupCommand) failure(ctx context.Context, inv invocation, err error) *discordgo.InteractionResponseData {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return errorReply(apperrors.Message(err))
	}

	c.logger.ErrorContext(ctx, "meetup command failed",
		"subcommand", inv.sub,
		"member", inv.member.ID,
		"error", err,
	)

	out, msgErr := c.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Kind: apperrors.KindInternal})
	if msgErr != nil {
		return errorReply("Something went wrong, try again later.")
	}
	return errorReply(out.Message)
}

// rsvpMessage announces an RSVP change. The event lookup only adds flavor,
// so its failure falls back to a plain message.
func (c *MeetupCommand) rsvpMessage(ctx context.Context, member Member, eventID string, canceled bool) string {
	fallback := "RSVP'd!"
	if canceled {
		fallback = "RSVP canceled."
	}

	details, err := c.orchestrator.LookupEventDetails(ctx, &orchestrator.LookupEventDetailsInput{EventID: eventID})
	if err != nil {
		c.logger.DebugContext(ctx, "event lookup for rsvp message failed", "event", eventID, "error", err)
		return fallback
	}

	out, err := c.messages.GetRSVPMessage(ctx, &messaging.GetRSVPMessageInput{
		Name:       member.Name,
		EventTitle: details.Title,
		Canceled:   canceled,
		SpotsLeft:  max(details.Capacity-details.Count, 0),
	})
	if err != nil {
		return fallback
	}
	return out.Message
}

func (c *MeetupCommand) streakMessage(ctx context.Context, name string, count int) string {
	out, err := c.messages.GetStreakMessage(ctx, &messaging.GetStreakMessageInput{Name: name, Count: count})
	if err != nil {
		return ""
	}
	return out.Message
}

func memberOf(i *discordgo.InteractionCreate) Member {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return Member{ID: i.Member.User.ID, Name: name}
	}

	// direct messages carry the user without a guild member
	if i.User != nil {
		return Member{ID: i.User.ID, Name: i.User.Username}
	}

	return Member{}
}

func componentID(action, eventID string) string {
	return strings.Join([]string{"meetup", action, eventID}, ":")
}

func parseComponentID(command, customID string) (action, eventID string, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != command {
		return "", "", false
	}

	switch parts[1] {
	case actionRSVP, actionUpvote:
		return parts[1], parts[2], parts[2] != ""
	}
	return "", "", false
}
