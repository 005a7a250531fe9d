package dimension

// Marker tables the analyzers scan for. Entries are lowercase; scanning is
// plain substring search against a lowercased message, so an entry also
// matches inside longer words. That is intentional and cheap, not clever.
var (
	// promptEngineering
	specificLanguage = []string{
		"specifically", "exactly", "precisely", "in particular",
		"specific", "must include", "requirement",
	}
	vagueLanguage = []string{
		"something", "anything", "stuff", "things", "whatever",
		"somehow", "maybe", "kind of", "sort of",
	}
	contextLabels = []string{
		"context:", "background:", "assume", "given that",
		"scenario:", "for context",
	}
	exampleMarkers = []string{
		"for example", "e.g.", "example:", "such as",
		"like this", "for instance",
	}
	constraintMarkers = []string{
		"must", "should", "cannot", "don't", "avoid",
		"limit", "only", "constraint", "require",
	}
	seniorityMarkers = []string{"with", "experienced", "expert"}

	// iterativeRefinement
	targetedChangeMarkers = []string{
		"change the", "update the", "modify the", "replace the",
		"instead of", "rather than", "adjust the",
	}
	priorOutputMarkers = []string{
		"your previous", "your last", "the above", "that section",
		"the second", "the first", "that part", "you wrote",
	}
	quantifiedAdjustments = []string{
		"shorter", "longer", "more detail", "less detail",
		"fewer", "more concise", "simpler",
	}
	errorAcknowledgments = []string{
		"that's wrong", "that is wrong", "incorrect", "not what i",
		"mistake", "error", "didn't work", "does not work",
		"failed", "bug",
	}
	correctiveInstructions = []string{
		"should be", "instead", "actually", "i meant",
		"to clarify", "let me rephrase", "correction",
	}
	improvementLanguage = []string{
		"better", "improve", "refine", "enhance", "polish",
		"closer", "almost there",
	}
	buildingLanguage = []string{
		"now add", "also add", "next", "building on",
		"take it further", "expand on", "one more",
	}
	approvalThenPush = []string{
		"great, now", "perfect, now", "good, now",
		"thanks, now", "love it, now",
	}

	// problemSolving
	stepLanguage = []string{
		"step by step", "first", "then", "break down",
		"break this down", "one at a time", "step 1",
	}
	subtaskVocabulary = []string{
		"subtask", "part", "phase", "component",
		"section", "piece", "stage",
	}
	continuityPhrases = []string{
		"next", "now", "then", "after that",
		"moving on", "following up", "continuing",
	}
	basicMarkers = []string{
		"basic", "simple", "start with", "overview", "introduction",
	}
	advancedMarkers = []string{
		"advanced", "complex", "detailed", "deep dive",
		"in depth", "edge case", "optimization",
	}
	topicKeywords = []string{
		"code", "write", "design", "data", "test",
		"plan", "research", "translate", "summarize", "math",
	}
	objectiveMarkers = []string{
		"i want to", "i need to", "i need you to", "my goal",
		"the goal is", "i'm trying to", "i am trying to", "objective",
	}
	actionVerbs = []string{
		"create", "build", "write", "make", "design",
		"develop", "generate", "implement", "fix",
	}
	completionMarkers = []string{
		"thanks", "thank you", "perfect", "that works",
		"exactly what i", "that's it", "done", "solved", "great job",
	}
	offTopicMarkers = []string{
		"by the way", "unrelated", "off topic", "random question",
		"side note", "changing the subject",
	}

	// criticalThinking
	verificationRequests = []string{
		"verify", "fact check", "fact-check", "is that true",
		"is that correct", "are you sure", "double check",
		"double-check", "confirm that",
	}
	doubtExpressions = []string{
		"i doubt", "not sure that", "seems wrong", "seems off",
		"skeptical", "really?",
	}
	sourceRequests = []string{
		"source", "citation", "cite", "reference",
		"where did you get", "link to",
	}
	biasVocabulary = []string{
		"bias", "biased", "one-sided", "one sided", "slanted",
		"objective view", "neutral",
	}
	challengeQuestions = []string{
		"what about", "have you considered", "isn't it possible",
		"counterargument", "devil's advocate", "play devil",
	}
	alternativeViewpoints = []string{
		"other perspectives", "alternative", "another way to look",
		"different angle", "on the other hand", "opposing view",
	}
	qualityVocabulary = []string{
		"quality", "accurate", "accuracy", "thorough",
		"well-written", "comprehensive", "rigorous", "detailed",
	}
	improvementInstructions = []string{
		"improve", "make it better", "could be better",
		"strengthen", "polish", "tighten", "refine this",
	}
	comparativePhrasing = []string{
		"good but", "great but", "fine but",
		"needs improvement", "needs work", "not quite",
	}
)
