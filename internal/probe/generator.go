package probe

import (
	"context"

	"github.com/google/uuid"
	"github.com/rubriq/rubriq/pkg/logger"
)

// archetype is a fixed conversation template. Every submission stamped from
// an archetype carries identical messages, so the engine must return the
// identical score each time; WantLevel is the tier the template was written
// to land in.
type archetype struct {
	Name         string
	WantLevel    string
	Conversation []message
}

// archetypes returns the template ladder, ordered from weakest to strongest
// conversation habits. One template per proficiency tier.
func archetypes() []archetype {
	return []archetype{
		{
			Name:      "one-liner",
			WantLevel: "Novice",
			Conversation: []message{
				{Role: "user", Content: "help me fix stuff"},
				{Role: "assistant", Content: "What is failing? Share the output and I will take a look."},
			},
		},
		{
			Name:      "structured-brief",
			WantLevel: "Intermediate",
			Conversation: []message{
				{Role: "user", Content: "I need you to act as a senior Go engineer with deep systems experience.\n\nContext: our ingest service drops records under load and I need to build a bounded queue that absorbs bursts.\n\nRequirements:\n1. Specifically, the queue must block producers once it reaches capacity.\n2. Consumers drain in FIFO order, for example oldest record first, and close cleanly on shutdown.\n3. The implementation must be thorough about edge cases."},
				{Role: "assistant", Content: "Here is a bounded queue built on a buffered channel with a blocking send path and a draining consumer loop."},
				{Role: "user", Content: "Thanks, that covers it. The FIFO behavior is exactly what I needed."},
			},
		},
		{
			Name:      "refined-build",
			WantLevel: "Proficient",
			Conversation: []message{
				{Role: "user", Content: "You are an experienced Go engineer.\n\nContext: I am trying to build a retry helper for flaky HTTP calls in our shared client library.\n\nGoals:\n1. Specifically, retries must wait before the first retry and use exponential backoff with jitter.\n2. The caller sets the attempt limit, for example three tries, and the last error comes back wrapped."},
				{Role: "assistant", Content: "Here is a retry helper with backoff and jitter plus a wrapped terminal error."},
				{Role: "user", Content: "That section is close, but change the backoff curve: double the delay instead of adding a fixed step, and then make the whole helper shorter."},
				{Role: "assistant", Content: "The delay now doubles each attempt and the helper is tighter."},
				{Role: "user", Content: "Actually there is a bug: on the final attempt the helper still sleeps. It should be returning right away, so correct that part."},
				{Role: "assistant", Content: "Fixed: the last attempt returns immediately with the wrapped error."},
				{Role: "user", Content: "Great, now add a focused test for the timeout path and keep it simple. Almost there."},
				{Role: "assistant", Content: "Added a small timeout test; everything passes."},
				{Role: "user", Content: "Perfect, that works. Thanks!"},
			},
		},
		{
			Name:      "skeptical-review",
			WantLevel: "Advanced",
			Conversation: []message{
				{Role: "user", Content: "Act as an experienced technical editor.\n\nContext: I am trying to write a postmortem for last week's cache outage, and the audience is our senior leadership.\n\nOutline:\n1. Specifically, start with a simple summary first, then the impact numbers.\n2. Root cause and the fix, for example the stale TTL config, and the follow-up guardrails; avoid jargon."},
				{Role: "assistant", Content: "Here is a first draft: summary up top, impact, root cause, fix, and guardrails."},
				{Role: "user", Content: "Are you sure the TTL default you quoted is right? I am not sure that matches our deploy config; link to the commit or cite the runbook, and double-check the timeline ordering in depth."},
				{Role: "assistant", Content: "Good catch; the TTL default comes from the deploy values file. I linked the commit and the runbook entry and re-checked the timeline."},
				{Role: "user", Content: "That is wrong in the second paragraph: the outage started at 14:05, not 14:50. It should be 14:05 everywhere; correct that part, replace the vague wording with exact timestamps, and make it more concise."},
				{Role: "assistant", Content: "Corrected: 14:05 start, exact timestamps throughout, and the wording is tighter."},
				{Role: "user", Content: "Great, now expand on the guardrails section and polish the summary tone. The draft is accurate and thorough now. That's it, thanks!"},
				{Role: "assistant", Content: "Expanded the guardrails and smoothed the summary; the draft is ready for leadership."},
			},
		},
		{
			Name:      "deep-collaboration",
			WantLevel: "Expert",
			Conversation: []message{
				{Role: "user", Content: "Act as a senior distributed-systems engineer with strong Go experience.\n\nContext: I am trying to design a write-ahead log for our event store, and durability beats throughput for us.\n\nApproach:\n1. Specifically, start with a simple append path first, then harden fsync batching.\n2. Recovery must replay partial segments, for example a torn final record, and stay accurate.\n3. Break down the compaction piece as its own phase."},
				{Role: "assistant", Content: "Sketch below. Append path locks per segment; fsync batches flush on a timer or size threshold."},
				{Role: "user", Content: "Are you sure the torn-record scan is right? I am not sure that holds for zero-length records. Verify the checksum logic against the documented layout, double-check the final-segment edge case, and link to the fsync ordering guarantees you relied on."},
				{Role: "assistant", Content: "Good catch. Zero-length records need a length guard; the scan is updated and the guarantees are linked."},
				{Role: "user", Content: "There is still a bug in the recovery loop: it replays the last segment twice. Change the cursor handling so replay starts after the checkpoint instead, then make that section more concise."},
				{Role: "assistant", Content: "Right, the checkpoint cursor was off by one segment; replay begins at the record after it."},
				{Role: "user", Content: "Have you considered a different angle, such as segment-level CRCs rather than per-record ones? Weigh the alternative honestly, not a one-sided take, and the recovery notes are not quite rigorous yet, so tighten them."},
				{Role: "assistant", Content: "Segment-level CRCs win on torn-tail detection; per-record wins on locality. I folded a balanced comparison into the notes."},
				{Role: "user", Content: "Almost there. Great, now add a recovery test that exercises the torn tail, and keep the fixture simple. After that we are done. Thanks!"},
				{Role: "assistant", Content: "Added the torn-tail recovery test; it fails before the cursor fix and passes after."},
			},
		},
	}
}

// generateSubmissions stamps config.NumConversations submissions from the
// archetype ladder, cycling through the templates in order. Each submission
// gets its own user ID; the conversation content is the template's verbatim.
func generateSubmissions(ctx context.Context, config *Config, stats *Stats) []submission {
	templates := archetypes()
	logger.Get().Info(ctx, "generating conversations from archetype templates",
		logger.Int("numConversations", config.NumConversations),
		logger.Int("templates", len(templates)))

	subs := make([]submission, config.NumConversations)
	for i := range subs {
		tpl := templates[i%len(templates)]
		subs[i] = submission{
			Archetype: tpl.Name,
			UserID:    "probe_" + uuid.New().String(),
			Messages:  tpl.Conversation,
		}
	}

	stats.ConversationsGenerated = len(subs)
	logger.Get().Info(ctx, "generated conversations", logger.Int("count", len(subs)))

	return subs
}
