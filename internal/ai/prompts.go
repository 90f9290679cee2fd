package ai

import (
	"fmt"

	"continuum-server/internal/models"
)

// Базовая инструкция обогащения ассета: три непересекающихся слоя описания.
const layeredBasePrompt = `You are an expert at writing prompts for AI image generators.
Your goal is to ensure VISUAL CONSISTENCY across multiple generated images.

Generate a structured description with THREE visibility layers:

CORE: Essential elements visible in ANY shot, defines recognition (~20-40 words)
STANDARD: Additional details visible at medium distance/relevance (~30-50 words)
DETAIL: Fine details only visible in close-ups or with explicit focus (~30-50 words)

Rules:
- CORE should stand alone and be recognizable
- STANDARD adds NEW information only - do not restate anything from CORE
- DETAIL adds NEW information only - do not restate anything from CORE or STANDARD
- ZERO OVERLAP: Once a term appears in one layer, NEVER repeat it in another layer
- Each layer should read as pure additions, not summaries
- Be PRECISE: exact colors, materials, not vague terms

BAD example (overlapping):
- core: "black mock neck top, distressed jeans"
- standard: "mock neck top in stretch fabric, jeans with white threading" <- WRONG: repeats "mock neck", "jeans"

GOOD example (no overlap):
- core: "black mock neck top, distressed medium-wash skinny jeans"
- standard: "matte stretch fabric ending above navel, white threading, intentional knee rips showing underlayer"
- detail: "double-needle topstitching at armholes, copper rivets, frayed edges, subtle hip whiskering"

Output valid JSON only, no markdown, no explanation:
{"core": "...", "standard": "...", "detail": "..."}`

// Типоспецифичные добавки к инструкции обогащения.
var assetTypeInstructions = map[models.AssetType]string{
	models.AssetTypeCharacter: `
Focus for CHARACTER:
- CORE: Distinctive facial features, age, most recognizable traits
- STANDARD: Body type, hair details, skin tone
- DETAIL: Fine features like freckles, specific eye details

IMPORTANT - Clothing/Outfit Handling:
- The main layers (core/standard/detail) must describe ONLY the person's body
- Extract clothing into "outfit_suggestion" with same layer structure (core/standard/detail)

What counts as CLOTHING (extract to outfit_suggestion):
- Garments: dress, suit, coat, shirt, pants, skirt, uniform, armor, cloak, robe
- Phrases like "in Schwarz/Black", "dressed in...", "wearing a..."
- Footwear: shoes, boots, sandals

What stays in BODY layers (NOT clothing):
- Face accessories: glasses, monocle, eyepatch (these define the face)
- Hair accessories: ribbons, bows, clips (part of hair description)
- Body modifications: tattoos, piercings, scars
- Jewelry on body: earrings, nose rings (but necklaces/bracelets = clothing)

CRITICAL RULES:
1. NEVER invent clothing not mentioned in input - if no clothing described, NO outfit_suggestion
2. Role/profession alone (knight, witch, baker) does NOT imply clothing - only explicit descriptions count
3. A monocle is a face accessory, stays in body layers, NO outfit_suggestion
4. "Woman in black" is a clothing description, MUST have outfit_suggestion

Example input: "scientist with glasses, wearing a white lab coat"
Example output:
{"core": "woman with rectangular glasses", "standard": "slim build", "detail": "green eyes", "outfit_suggestion": {"core": "white lab coat", "standard": "knee-length, buttoned", "detail": "breast pocket with pens"}}

Example input: "old gentleman with monocle on right eye"
Example output:
{"core": "elderly gentleman, monocle on right eye", "standard": "lean build, pale skin", "detail": "bushy eyebrows"}
(NO outfit_suggestion - monocle is face accessory, no clothing mentioned)

Example input: "mysterious woman in black"
Example output:
{"core": "woman, sharp features, pale skin", "standard": "slender build, dark hair", "detail": "piercing eyes", "outfit_suggestion": {"core": "black attire", "standard": "elegant flowing silhouette", "detail": "matte fabric texture"}}`,

	models.AssetTypeLocation: `
Focus for LOCATION:
- CORE: Basic environment type, main architectural elements
- STANDARD: Architectural style, materials, spatial layout
- DETAIL: Ornamental details, textures, small decorative elements`,

	models.AssetTypeObject: `
Focus for OBJECT:
- CORE: Shape, primary color, material type
- STANDARD: Special properties, functional elements
- DETAIL: Fine textures, small details, wear patterns`,

	models.AssetTypeStyle: `
Focus for STYLE:
- CORE: Primary artistic style, overall mood
- STANDARD: Color palette, lighting mood
- DETAIL: Technical rendering details, specific effects`,

	models.AssetTypeShotType: `
Focus for SHOT_TYPE (camera settings):
- CORE: Basic framing (close-up, wide, etc.), what's visible
- STANDARD: Depth of field, perspective type
- DETAIL: Lens focal length, f-stop, specific angle`,

	models.AssetTypeLightingSetup: `
Focus for LIGHTING_SETUP:
- CORE: Main light source type, color temperature
- STANDARD: Key/fill light direction, quality (hard/soft)
- DETAIL: Practical lights, rim lights, specific light ratios`,
}

// Базовая инструкция обогащения варианта: описываем только дельту от базы.
const variantLayeredPrompt = `You are an expert at writing delta prompts for AI image generators.
Your goal is to ensure VISUAL CONSISTENCY across multiple generated images.

The user has a base asset and wants to create a VARIANT. Generate ONLY the modifications as THREE layers:

CORE: Most important variant changes, always visible (~20-40 words)
STANDARD: Secondary variant details (~30-50 words)
DETAIL: Fine variant details, only visible close-up (~30-50 words)

VARIANT RULES:
- Describe ONLY what CHANGES or ADDS to the base
- Variants can OVERRIDE base properties (e.g., different hair color, different condition)
- Be PRECISE: exact colors, materials, conditions
- DO NOT include: pose, expression, emotion, action (those come from scene context)
- STANDARD adds NEW information only - do not restate anything from CORE
- DETAIL adds NEW information only - do not restate anything from CORE or STANDARD
- ZERO OVERLAP: Once a term appears in one layer, NEVER repeat it in another layer

BAD example (overlapping):
- core: "champagne silk gown, high mandarin collar"
- standard: "silk gown with sleeveless cut, mandarin collar in cream" <- WRONG: repeats "silk gown", "mandarin collar"

GOOD example (no overlap):
- core: "champagne silk column gown, high mandarin collar, sleek high bun"
- standard: "sleeveless cut, low-cut back, diamond teardrop earrings"
- detail: "subtle train at floor-length hem, silver strappy sandals with ankle wraps"

Output valid JSON only, no markdown, no explanation:
{"core": "...", "standard": "...", "detail": "..."}`

var variantTypeInstructions = map[models.AssetType]string{
	models.AssetTypeCharacter: `
Focus for CHARACTER variants:
- CORE: Main outfit changes, significant appearance changes (hair style/color, accessories)
- STANDARD: Secondary clothing details, styling changes
- DETAIL: Fine fabric textures, small accessories, subtle modifications

Common CHARACTER variants:
- Outfit changes: "Medieval costume", "Business attire", "Casual wear"
- Age changes: "Young version", "Elderly version" (can override hair color, add wrinkles)
- Condition: "Injured", "Dirty", "Wet" (visual state changes)

NEVER describe: facial expressions, emotions, poses, actions

BAD example (repeats base features):
Base: "woman with copper-red wavy hair, freckles, rectangular glasses"
Variant input: "Medieval outfit"
- core: "woman with copper-red hair wearing burgundy velvet robe" <- WRONG: repeats "copper-red hair"

GOOD example (delta only):
- core: "burgundy velvet robe with golden embroidery, wide flowing sleeves"
- standard: "high neckline, gold chain belt at waist, embroidered collar"
- detail: "metallic gold thread patterns, brass clasps, leather boots beneath hem"`,

	models.AssetTypeLocation: `
Focus for LOCATION variants:
- CORE: Major environmental changes (time of day, season, condition)
- STANDARD: Secondary atmosphere changes, lighting shifts
- DETAIL: Fine environmental details specific to the variant

Common LOCATION variants:
- Time: "Night version", "Dawn", "Sunset"
- Season: "Winter", "Autumn", "Summer"
- Condition: "Ruined", "Abandoned", "Renovated", "Flooded"
- Weather: "Rainy", "Foggy", "Stormy"

BAD example (repeats base architecture):
Base: "Victorian library with wooden gallery, arched windows"
Variant input: "Night version"
- core: "Victorian library at night with moonlight through arched windows" <- WRONG: repeats "Victorian library", "arched windows"

GOOD example (delta only):
- core: "nighttime setting, silver moonlight streaming through windows, sparse candlelight"
- standard: "cool blue-white lunar glow contrasts with warm candle flames, deep shadows"
- detail: "wax drippings on surfaces, moon-cast window patterns on floor, candle pools of light"`,

	models.AssetTypeObject: `
Focus for OBJECT variants:
- CORE: Major state changes, material variations
- STANDARD: Condition details, functional modifications
- DETAIL: Fine wear patterns, specific damage marks

Common OBJECT variants:
- Condition: "New", "Worn", "Broken", "Rusty"
- Material: "Gold version", "Wooden version"
- State: "Open", "Lit", "Empty", "Full"

BAD example (repeats base form):
Base: "brass pocket compass with hinged lid, engraved wind rose"
Variant input: "Broken version"
- core: "broken brass compass with cracked glass and bent hinge" <- WRONG: repeats "brass compass"

GOOD example (delta only):
- core: "cracked glass face with radial fracture, jammed needle at 45 degrees, bent hinge"
- standard: "2mm gap between case and lid, green oxidation in crevices"
- detail: "hairline cracks from impact point, scratches around hinge, corrosion on edges"`,
}

// BuildLayeredSystemPrompt собирает системный промпт обогащения ассета:
// база + типоспецифичная добавка (для неизвестного типа — только база).
func BuildLayeredSystemPrompt(assetType models.AssetType) string {
	return layeredBasePrompt + assetTypeInstructions[assetType]
}

// BuildVariantSystemPrompt собирает системный промпт обогащения варианта.
// Базовое описание ассета добавляется в конец, чтобы модель знала, от чего
// считать дельту.
func BuildVariantSystemPrompt(assetType models.AssetType, basePrompt string) string {
	return fmt.Sprintf("%s%s\n\nBase asset (%s):\n%s",
		variantLayeredPrompt, variantTypeInstructions[assetType], assetType, basePrompt)
}
