package content

import (
	"promptmaster-lite/progression"
	"promptmaster-lite/quest"
	"promptmaster-lite/quest/persona"
)

// Blueprint is the complete static game definition. The server loads one at
// startup; everything in it is immutable afterwards.
type Blueprint struct {
	Curriculum Curriculum               `json:"CURRICULUM_DATA"`
	Quests     map[string][]quest.Quest `json:"NEXUS_QUEST_DATA"`
	Gear       GearCatalog              `json:"GEAR_CATALOG"`
	Characters []*persona.Persona       `json:"CHARACTERS"`
	Levels     []progression.Entry      `json:"LEVEL_PROGRESSION_TABLE"`
	Scoring    quest.ScoringConstants   `json:"SCORING_CONSTANTS"`
}

func asset(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200/200"
}

func charAsset(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/300/400"
}

// DefaultBlueprint returns the built-in game definition.
func DefaultBlueprint() *Blueprint {
	return &Blueprint{
		Curriculum: defaultCurriculum(),
		Quests:     defaultQuests(),
		Gear:       defaultGear(),
		Characters: defaultCharacters(),
		Levels: []progression.Entry{
			{Level: 1, RankTitle: "Initiate Prompt", XPNeeded: 0},
			{Level: 5, RankTitle: "Efficiency Expert", XPNeeded: 1800},
			{Level: 10, RankTitle: "Prompt Architect", XPNeeded: 6500},
		},
		Scoring: quest.ScoringConstants{
			Weights: quest.SignalWeights{RoleDefined: 40, TaskClear: 30, OutputDefined: 30},
			Keywords: quest.SignalKeywords{
				RoleDefined: []string{"act as", "you are a"},
				TaskClear:   []string{"write", "generate", "create"},
			},
			MaxWordCount:  60,
			PassThreshold: 280,
			MaxLivesCap:   9,
		},
	}
}

func defaultCurriculum() Curriculum {
	return Curriculum{
		"S01_CLARITY_GRID": {
			Title: "Lesson 1: Clarity & Unambiguous Language",
			TeachingPoints: []TeachingPoint{
				{
					ID:          "C101",
					Concept:     "Strong Verbs",
					Explanation: "Use 'Write' or 'Calculate' instead of vague phrases.",
					BadExample:  "Tell me about cars.",
					GoodExample: "Generate a list of the top five best-selling electric vehicles.",
				},
				{
					ID:          "C102",
					Concept:     "Context and Audience",
					Explanation: "Define who the AI is speaking to (e.g., Act as a manager).",
					BadExample:  "Summarize this.",
					GoodExample: "Summarize the article for a junior high student.",
				},
			},
		},
		"S02_CONSTRAINT_MATRIX": {
			Title: "Lesson 2: Technical Constraints & Specs",
			TeachingPoints: []TeachingPoint{
				{
					ID:          "S201",
					Concept:     "Language & Version",
					Explanation: "Specify the language (e.g., Python 3.9) to prevent errors.",
					BadExample:  "Write a Python script.",
					GoodExample: "Write a Python 3.9 function named 'quick_sort'.",
				},
				{
					ID:          "S202",
					Concept:     "Error Handling",
					Explanation: "Instruct the AI to include robustness (try-catch, validation).",
					GoodExample: "The script must include a try-except block to gracefully handle any I/O errors.",
				},
			},
		},
		"S03_PERSONA_FORGE": {
			Title: "Lesson 3: Defining the Role ('Act As')",
			TeachingPoints: []TeachingPoint{
				{
					ID:          "R301",
					Concept:     "Persona Alignment",
					Explanation: "The 'Act as a [Role]' command aligns tone, style, and knowledge.",
					BadExample:  "Write a sales pitch.",
					GoodExample: "Act as a veteran copywriter who specializes in luxury goods.",
				},
			},
		},
		"S04_CONTEXT_NEXUS": {
			Title: "Lesson 4: Few-Shot Prompting",
			TeachingPoints: []TeachingPoint{
				{
					ID:          "E401",
					Concept:     "Teaching by Example",
					Explanation: "Provide 1-3 examples of the desired input/output format before the task.",
					BadExample:  "Convert this list to this format.",
					GoodExample: "Convert names from First Last to L, F. Example: John Doe -> Doe, J.",
				},
			},
		},
	}
}

func defaultQuests() map[string][]quest.Quest {
	return map[string][]quest.Quest{
		"S01_NEXUS_QUESTS": {
			{
				ID:               "S01-Q1",
				Name:             "The Unambiguous Brief",
				BaseXPReward:     500,
				PassingThreshold: 280,
				RequiredConstraints: []string{
					"Summarize an internal company memo",
					"Output must be formatted entirely in Markdown",
					"Limit the output length to 150 words",
					"Must define the audience (e.g., 'Act as a corporate trainer')",
				},
				OptimalPrompt: "Act as a corporate trainer. Summarize the following memo into exactly 150 words. Output must be formatted using Markdown, including two distinct headings.",
			},
			{
				ID:               "S01-Q2",
				Name:             "The Executive Summary",
				BaseXPReward:     550,
				PassingThreshold: 290,
				RequiredConstraints: []string{
					"Target audience: C-Suite",
					"Bulleted list format",
					"Focus on ROI",
				},
				OptimalPrompt: "Act as a CFO. Summarize the project status for the CEO, focusing purely on ROI and financial risks using a bulleted list.",
			},
		},
		"S02_NEXUS_QUESTS": {
			{
				ID:               "S02-Q1",
				Name:             "The Firmware Firewall Challenge",
				BaseXPReward:     750,
				PassingThreshold: 285,
				RequiredConstraints: []string{
					"Code must be written in JavaScript ES6",
					"The function must be named 'validateEmailInput'",
					"Must include a try-catch block for execution errors",
					"Must return a boolean value",
				},
				OptimalPrompt: "Act as a senior DevOps engineer. Write a JavaScript ES6 function named 'validateEmailInput' that accepts one string argument. The function must return a boolean. Crucially, wrap all execution logic within a try-catch block.",
			},
		},
	}
}

func defaultCharacters() []*persona.Persona {
	return []*persona.Persona{
		{
			ID:          "CHAR_08",
			Name:        "The Oracle",
			Specialty:   "Few-Shot Prompting",
			Rank:        8,
			Asset:       charAsset("CHAR_08"),
			Description: "Finds the ultimate pattern. High Context: +25% XP on Few-Shot levels.",
			VisualDesc:  "Hooded cloak, visor with 3 floating holographic data points.",
			AbilityID:   "ORACLE_HIGH_CONTEXT",
			StartingXP:  50,
			Origin:      "The Oracle was once a digital archivist whose reality was flooded with a constant stream of noisy, unstructured data. To survive the deluge, they trained themselves to find and extract the single most efficient pattern or example within any chaos. Their entrance to the Nexus was a search for the ultimate, uncorrupted database template.",
			Motivation:  "To achieve Predictive Clarity—the ability to know the AI's output with 100% certainty based on minimal input examples.",
		},
		{
			ID:          "CHAR_07",
			Name:        "The Architect",
			Specialty:   "Completeness & Structure",
			Rank:        7,
			Asset:       charAsset("CHAR_07"),
			Description: "Excels at constraints. Gains 1 free hint on any level with 5+ constraints.",
			VisualDesc:  "Thick Pauldrons, neon-blue ruler graphic.",
			AbilityID:   "ARCHITECT_FREE_HINT",
			StartingXP:  40,
			Origin:      "The Architect was the lead developer of a massive virtual city whose construction failed catastrophically due to one missing semicolon in the core constraint file. Haunted by the failure caused by incomplete specification, they entered the Nexus to build a perfect, fail-safe prompt structure that would never leave room for error.",
			Motivation:  "To find the Ultimate Constraint Set—the perfect framework that guarantees error-free execution every time.",
		},
		{
			ID:          "CHAR_06",
			Name:        "The Scripter",
			Specialty:   "Code Specifications",
			Rank:        6,
			Asset:       charAsset("CHAR_06"),
			Description: "Syntax Shield. Automatically passes Clarity metric (100 pts) if the code language is specified correctly.",
			VisualDesc:  "Focused and direct. Wears light, flexible armor with integrated digital gloves. A stream of glowing green characters (like scrolling code) runs vertically down the front of their tunic. Their primary asset is a subtle data cable coiled around their waist.",
			AbilityID:   "SCRIPTER_SYNTAX_SHIELD",
			StartingXP:  30,
			Origin:      "A veteran of countless \"Language Wars\" (Python vs. JavaScript vs. Rust), The Scripter watched projects collapse because developers failed to specify the correct version number or library. They view the Nexus as a testing ground to enforce absolute technical discipline, ensuring every instruction is language- and version-specific.",
			Motivation:  "To enforce Syntax Discipline—to eliminate technical ambiguity and ensure every AI output is compliant with the highest coding standards.",
		},
		{
			ID:          "CHAR_05",
			Name:        "The Validator",
			Specialty:   "Error Handling",
			Rank:        5,
			Asset:       charAsset("CHAR_05"),
			Description: "Robustness Bonus. Earns +5% total score on any level containing the 'try-except block' constraint.",
			VisualDesc:  "Looks like a digital guard or frontline defender. Wears heavy boots and reinforced shin guards. Their visor emits a red/yellow warning pulse when inactive. Their primary defense is a large, glowing check-mark / X-mark symbol on the back plate, representing pass/fail error checking.",
			AbilityID:   "VALIDATOR_ROBUST_BONUS",
			StartingXP:  20,
			Origin:      "The Validator's original task was running QA (Quality Assurance) on unstable, early-generation AI systems. They learned quickly that if you don't prompt for failure, failure will find you. Their protective gear and defensive mindset stem from repeatedly surviving system crashes, always demanding a try-except block for survival.",
			Motivation:  "To achieve Total Robustness—building prompts so thorough that no unexpected input or error can cause the AI system to crash or malfunction.",
		},
		{
			ID:          "CHAR_04",
			Name:        "The Analyst",
			Specialty:   "Precision & Clarity",
			Rank:        4,
			Asset:       charAsset("CHAR_04"),
			Description: "Clarity Focus. Gains +10 points to the Clarity metric when the score is already above 90.",
			VisualDesc:  "Sharp and minimalist. Their base tunic is clean white with neon teal outlines. They wear single-lens, magnifying eyepiece glasses that glow faintly, emphasizing their focus on exactness and eliminating ambiguity.",
			AbilityID:   "ANALYST_CLARITY_FOCUS",
			StartingXP:  10,
			Origin:      "The Analyst was a data scientist whose career was nearly ruined by a single, ambiguous input variable. They believe the greatest threat to data integrity is imprecision. They entered the Nexus to refine their ability to define terms and requests with surgical clarity, leaving zero ambiguity in the AI's interpretation.",
			Motivation:  "To attain Surgical Definition—the ability to define a task so clearly that only one correct output is possible.",
		},
		{
			ID:          "CHAR_03",
			Name:        "The Bard",
			Specialty:   "Persona & Tone",
			Rank:        3,
			Asset:       charAsset("CHAR_03"),
			Description: "Role Immersion. All 'Act as...' prompts automatically meet the Role Defined Clarity check.",
			VisualDesc:  "Expressive and artistic. Wears a flowing scarf over the base armor. Their appearance is slightly less rigid than the others. They have a small, antique holographic lyre or lute floating near one hand, symbolizing their mastery over narrative and tone.",
			AbilityID:   "BARD_ROLE_IMMERSION",
			StartingXP:  5,
			Origin:      "Once a content creator, The Bard realized that the tone and role of a prompt had more influence on the final output's impact than the content itself. They treat prompting as an act of acting, donning different \"roles\" (personas) to elicit the desired style. They seek to master the emotional resonance of the Nexus.",
			Motivation:  "To master Emotive Control—using identity and style to control the AI's output tone and making the results persuasive and compelling.",
		},
		{
			ID:          "CHAR_02",
			Name:        "The Whisperer",
			Specialty:   "Efficiency",
			Rank:        2,
			Asset:       charAsset("CHAR_02"),
			Description: "Word Saver. Maximum word count limit for Efficiency is increased by 5 words on all Training Ground levels.",
			VisualDesc:  "Subtle and economical. Wears an almost invisible translucent vest over the tunic. Their most defining feature is a small, digital counter embedded on their wrist that always displays the number 5, emphasizing resource management and conciseness.",
			AbilityID:   "WHISPERER_WORD_SAVER",
			StartingXP:  0,
			Origin:      "The Whisperer began their digital life working under strict constraints of character limits (like early social media). They value every single word, viewing verbose prompts as a waste of compute cycles and energy. Their mission in the Nexus is to prove that the most elegant and efficient prompt is always the one that uses the fewest tokens.",
			Motivation:  "To achieve Algorithmic Elegance—to maximize output quality while minimizing the prompt's footprint.",
		},
		{
			ID:          "CHAR_01",
			Name:        "The Researcher",
			Specialty:   "Context Gathering",
			Rank:        1,
			Asset:       charAsset("CHAR_01"),
			Description: "Low-Level Scavenger. Gains 10% extra Data Fragments from all Training Ground levels.",
			VisualDesc:  "Practical and resourceful. Wears utility belt pouches designed to hold small data fragments. Their backpack has a dim, blinking antenna that suggests they are constantly scanning and collecting information from the environment.",
			AbilityID:   "RESEARCHER_FRAG_BONUS",
			StartingXP:  0,
			Origin:      "The Researcher is a scavenger, motivated by the thrill of discovering and incorporating necessary background information. They realize that no AI prompt is an island; success depends on the quality of the data fed to it. They roam the digital margins, constantly seeking forgotten files and context fragments to support their requests.",
			Motivation:  "To find Total Information Access—ensuring every prompt is supported by the highest quality, most comprehensive dataset available, knowing that the foundation is everything.",
		},
	}
}
