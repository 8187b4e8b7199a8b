package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/bwmarrin/discordgo"
)

const (
	// maxListedEvents bounds the embed fields of an event list
	maxListedEvents = 10

	// maxEventButtons is the number of buttons Discord allows in one row
	maxEventButtons = 5

	maxLabelLength = 80
)

// renderEvents lists events with an RSVP button for the first few
func renderEvents(title string, events []*models.Event) *discordgo.InteractionResponseData {
	if len(events) == 0 {
		return embedReply(title, "No events found.", nil)
	}

	var fields []*discordgo.MessageEmbedField
	var buttons []discordgo.MessageComponent
	for i, event := range events {
		if i == maxListedEvents {
			break
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%s)", event.Title, event.Status),
			Value: eventSummary(event),
		})

		if len(buttons) < maxEventButtons && event.Status == models.EventStatusUpcoming {
			buttons = append(buttons, discordgo.Button{
				Label:    truncate("RSVP: "+event.Title, maxLabelLength),
				Style:    discordgo.SuccessButton,
				CustomID: componentID(actionRSVP, event.ID),
				Disabled: event.IsFull(),
			})
		}
	}

	description := ""
	if len(events) > maxListedEvents {
		description = fmt.Sprintf("Showing %d of %d events.", maxListedEvents, len(events))
	}

	if len(buttons) == 0 {
		return embedReply(title, description, fields)
	}
	return embedReply(title, description, fields, discordgo.ActionsRow{Components: buttons})
}

func eventSummary(event *models.Event) string {
	when := "TBD"
	if !event.Date.IsZero() {
		when = fmt.Sprintf("<t:%d:f>", event.Date.Unix())
	}

	lines := []string{
		fmt.Sprintf("📅 %s", when),
		fmt.Sprintf("👥 %d/%d", len(event.Attendees), event.Capacity),
		fmt.Sprintf("🏷️ %s · %s", event.Category, event.MoodTag),
	}
	if event.Location != "" {
		lines = append(lines, fmt.Sprintf("📍 %s", event.Location))
	}
	lines = append(lines, fmt.Sprintf("`%s`", event.ID))

	return strings.Join(lines, "\n")
}

// renderRSVP confirms a new RSVP and offers an upvote
func renderRSVP(rsvp *models.RSVP, message string) *discordgo.InteractionResponseData {
	upvote := discordgo.Button{
		Label:    "Upvote",
		Style:    discordgo.PrimaryButton,
		CustomID: componentID(actionUpvote, rsvp.Event),
		Emoji:    &discordgo.ComponentEmoji{Name: "👍"},
	}

	return embedReply("You're in!", fmt.Sprintf("%s\n`%s`", message, rsvp.Event), nil,
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{upvote}})
}

// renderRecommendations shows events picked for the caller's mood
func renderRecommendations(out *orchestrator.RecommendEventsOutput) *discordgo.InteractionResponseData {
	title := fmt.Sprintf("Events for your %s mood", out.Mood)
	if out.Fallback {
		title = fmt.Sprintf("Nothing matches %s yet, here is everything", out.Mood)
	}

	return renderEvents(title, out.Events)
}

// renderStreak shows a member's attendance streak
func renderStreak(name string, streak *models.Streak, message string) *discordgo.InteractionResponseData {
	last := "never"
	if streak.LastAttended != nil {
		last = fmt.Sprintf("<t:%d:D>", streak.LastAttended.Unix())
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Streak",
			Value:  fmt.Sprintf("%d 🔥", streak.Count),
			Inline: true,
		},
		{
			Name:   "Last attended",
			Value:  last,
			Inline: true,
		},
	}

	return embedReply(fmt.Sprintf("%s's streak", name), message, fields)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
