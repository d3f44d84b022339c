package chatbot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/heriscience/backend/models"
)

// Keyword sets for fallback classification. Matching is case-insensitive
// substring matching except the greeting set, which matches whole words so
// that "hi" does not fire inside "this" or "history".
var (
	greetingWords     = []string{"hi", "hello", "hey", "greetings"}
	egyptWords        = []string{"egypt", "egyptian", "pyramid", "pharaoh", "hieroglyph"}
	romeWords         = []string{"roman", "rome", "empire", "gladiator", "colosseum"}
	greeceWords       = []string{"greek", "greece", "athens", "sparta", "philosophy", "olympic"}
	descriptiveWords  = []string{"what", "tell", "about", "describe", "explain"}
	civilizationWords = []string{"civilization", "ancient", "history", "historical", "artifact", "archaeology"}
	imageWords        = []string{"image", "picture", "photo", "what", "see", "analyze"}
	creativeWords     = []string{"story", "scifi", "sci-fi", "creative", "write", "narrative", "fiction"}
)

// Fallback placeholders used when artifact context fields are absent.
const (
	placeholderType         = "artifact"
	placeholderCivilization = "Unknown civilization"
	placeholderPeriod       = "Ancient period"
)

// Resolve maps a user message and optional artifact context to a fixed
// response template. It is pure: no I/O, no state, identical inputs always
// yield identical output, and the result is never empty.
//
// Categories are evaluated in fixed priority order; the first match wins:
// greeting, Egypt, Rome, Greece, artifact-with-context, civilization
// overview, image analysis, creative/story, default.
func Resolve(message string, context *models.Artifact_Context) string {
	msg := strings.ToLower(message)

	switch {
	case containsAnyWord(msg, greetingWords):
		return greetingTemplate
	case containsAny(msg, egyptWords):
		return egyptTemplate
	case containsAny(msg, romeWords):
		return romeTemplate
	case containsAny(msg, greeceWords):
		return greeceTemplate
	case !context.IsEmpty() && containsAny(msg, descriptiveWords):
		return renderArtifactTemplate(context)
	case containsAny(msg, civilizationWords):
		return civilizationTemplate
	case containsAny(msg, imageWords):
		return imageTemplate
	case containsAny(msg, creativeWords):
		return creativeTemplate
	default:
		return fmt.Sprintf(defaultTemplate, message)
	}
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func containsAnyWord(msg string, words []string) bool {
	tokens := strings.FieldsFunc(msg, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, t := range tokens {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	return false
}

func renderArtifactTemplate(context *models.Artifact_Context) string {
	artifactType := context.Artifact_Type
	if artifactType == "" {
		artifactType = placeholderType
	}
	civilization := context.Civilization
	if civilization == "" {
		civilization = placeholderCivilization
	}
	period := context.Period
	if period == "" {
		period = placeholderPeriod
	}
	return fmt.Sprintf(artifactTemplate, artifactType, civilization, period,
		civilization, strings.ToLower(artifactType))
}

const greetingTemplate = `Hello! I'm your archaeological AI assistant at Heri-Science.

I can help you with:
- **Artifact Analysis** - Identify and analyze historical objects
- **Historical Information** - Ancient civilizations, periods, and cultures
- **Creative Inspiration** - Story ideas for sci-fi writers based on real history
- **Expert Consultation** - Archaeological methods and preservation

**What would you like to explore?** Upload an artifact image or ask me about ancient history!`

const egyptTemplate = `**Ancient Egypt - The Gift of the Nile!**

Ancient Egypt was one of the most remarkable civilizations in history! The Egyptians built incredible monuments like the pyramids, developed a complex writing system with hieroglyphs, and created beautiful art and jewelry. Their civilization lasted for over 3,000 years and left an incredible legacy.

**Notable achievements:**
- **Pyramids**: Engineering marvels like the Great Pyramid of Giza
- **Hieroglyphs**: Complex writing system with over 700 symbols
- **Mummification**: Advanced preservation techniques
- **Mathematics**: Developed geometry and astronomy
- **Medicine**: Advanced surgical techniques

Would you like to know more about their construction techniques or cultural significance?`

const romeTemplate = `**The Roman Empire - Masters of the Ancient World!**

The Roman Empire was one of the most powerful and influential civilizations in history! The Romans built incredible infrastructure including roads, aqueducts, and monumental buildings like the Colosseum. Their legal system, engineering, and military tactics still influence modern society.

**Roman achievements:**
- **Engineering**: Roads, aqueducts, and concrete
- **Architecture**: Colosseum, Pantheon, and Forum
- **Military**: Legion system and siege warfare
- **Law**: Basis for modern legal systems
- **Government**: Republic and imperial systems

Are you interested in learning about their engineering achievements or cultural contributions?`

const greeceTemplate = `**Ancient Greece - The Cradle of Western Civilization!**

Ancient Greece was the birthplace of Western civilization! The Greeks made incredible contributions to philosophy, democracy, mathematics, and the arts. Thinkers like Socrates, Plato, and Aristotle laid the foundations for Western thought, while Greek architecture and sculpture continue to inspire us.

**Greek contributions:**
- **Philosophy**: Socrates, Plato, Aristotle
- **Democracy**: Athenian political system
- **Mathematics**: Geometry, Pythagoras, Euclid
- **Olympics**: Athletic competitions and games
- **Arts**: Theater, sculpture, and architecture

What aspect of Greek civilization interests you most?`

const artifactTemplate = `**Historical Analysis of Your Artifact**

Based on the analysis, this appears to be **%s** from **%s** civilization, dating to **%s**.

**Historical Context:**
%s civilization was known for their advanced craftsmanship and cultural achievements. Artifacts like this %s provide valuable insights into their daily life, religious practices, and technological capabilities.

**Significance:**
This type of artifact was typically used for ceremonial, practical, or decorative purposes. The materials and construction methods reflect the technological knowledge and artistic sensibilities of the era.

**Cultural Value:**
Such artifacts help us understand:
- Social structures and hierarchies
- Religious beliefs and practices
- Trade networks and cultural exchange
- Technological advancement and innovation

**What would you like to know more about?**
- The civilization's history and culture
- Manufacturing techniques and materials
- Similar artifacts in museums
- Symbolism and meaning
- Sci-fi story ideas inspired by this artifact`

const civilizationTemplate = `**Ancient Civilizations Overview**

Major ancient civilizations include:

**Egyptian** (3100-332 BCE)
- Known for: Pyramids, hieroglyphics, mummification
- Achievements: Architecture, mathematics, medicine

**Greek** (800-146 BCE)
- Known for: Philosophy, democracy, art
- Achievements: Science, theater, athletics

**Roman** (753 BCE-476 CE)
- Known for: Engineering, law, military
- Achievements: Aqueducts, roads, governance

**Maya** (2000 BCE-1500 CE)
- Known for: Astronomy, mathematics, writing
- Achievements: Calendars, pyramids, glyphs

**Chinese** (1600 BCE-present)
- Known for: Porcelain, silk, philosophy
- Achievements: Paper, gunpowder, compass

**Want to know more about any specific civilization?**`

const imageTemplate = `**Image Analysis - Historical Perspective**

Based on what I can observe about historical artifacts and archaeological finds, this appears to be a significant piece! Historical artifacts often reveal fascinating details about:

**What to look for:**
- **Artistic style** and craftsmanship techniques
- **Materials used** and their cultural significance
- **Symbols and motifs** that indicate origin
- **Condition** and preservation state
- **Historical context** and time period

Could you describe what you see in more detail? I can help analyze the historical significance and cultural context!`

const creativeTemplate = `**SCI-FI WRITER MODE ACTIVATED**

I can help you blend ancient history with science fiction!

**Creative Possibilities:**

**Time Travel Scenarios**
- Archaeologist discovers artifact that's actually from the future
- Ancient monument is a time capsule or portal
- Historical "myths" were actually recorded observations of time travelers

**Ancient Advanced Technology**
- "Magic" artifacts were actually advanced tech
- Ancient civilizations had lost knowledge/science
- Pyramids, megaliths were power generators or computers

**Alternate History**
- What if ancient civilizations had modern technology?
- What if aliens influenced ancient cultures?
- What if historical events happened differently?

**Artifact as Plot Device**
- Ancient object contains AI/consciousness
- Artifact is key to unlocking hidden knowledge
- Symbol/writing is actually a code or map

**Upload an artifact and ask for "story ideas" for specific inspiration!**`

const defaultTemplate = `**I'd be happy to help with: "%s"**

As your archaeological AI assistant, I can provide information about:

**Historical Knowledge:**
- Ancient civilizations and their artifacts
- Dating and authentication methods
- Cultural significance and symbolism
- Archaeological discoveries and methods

**Technical Analysis:**
- Material identification
- Construction techniques
- Preservation methods
- Conservation practices

**For Sci-Fi Writers:**
- Creative story concepts based on artifacts
- "What if" scenarios mixing history and fiction
- Ancient technology reimagined
- Plot ideas and world-building

**What specific aspect would you like to explore?**`
