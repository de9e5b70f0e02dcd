package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mlvn23/pokedex/pkg/analysis"
)

const defaultBaseURL = "https://pokeapi.co/api/v2"

var errNotFound = errors.New("resource not found")

// PokeAPIConfig configures the HTTP-backed provider.
type PokeAPIConfig struct {
	// BaseURL of the API. Defaults to the public PokeAPI endpoint.
	BaseURL string
	// HTTPTimeout per request. Defaults to 10 seconds.
	HTTPTimeout time.Duration
	// Cache for raw response bodies. Defaults to NopCache.
	Cache Cache
	// Logger for fetch diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (cfg *PokeAPIConfig) validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.Cache == nil {
		cfg.Cache = NopCache{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// PokeAPI implements Provider over the public PokeAPI. Raw responses are
// cached by URL; no retries are performed.
type PokeAPI struct {
	baseURL string
	httpc   *http.Client
	cache   Cache
	logger  *slog.Logger

	mu     sync.Mutex
	groups map[string]bool
}

func NewPokeAPI(cfg *PokeAPIConfig) (*PokeAPI, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid provider config: %w", err)
	}

	return &PokeAPI{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.HTTPTimeout},
		cache:   cfg.Cache,
		logger:  cfg.Logger,
	}, nil
}

// fetchJSON resolves a URL through the cache, hitting the network only on a
// miss. Cache read failures degrade to a refetch; cache write failures are
// logged and dropped so a broken cache never takes lookups down with it.
func (p *PokeAPI) fetchJSON(ctx context.Context, url string, dst any) error {
	body, ok, err := p.cache.Get(ctx, url)
	if err != nil {
		p.logger.Warn("cache read failed", "url", url, "error", err)
	}
	if ok {
		return json.Unmarshal(body, dst)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %s: %w", url, err)
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", url, errNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response for %s: %w", url, err)
	}

	p.logger.Debug("fetched resource", "url", url, "bytes", len(body))

	err = p.cache.Set(ctx, url, body)
	if err != nil {
		p.logger.Warn("cache write failed", "url", url, "error", err)
	}

	return json.Unmarshal(body, dst)
}

func (p *PokeAPI) url(parts ...string) string {
	return p.baseURL + "/" + strings.Join(parts, "/")
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonPayload struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Ability  namedResource `json:"ability"`
	} `json:"abilities"`
	Moves []struct {
		Move                namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod namedResource `json:"move_learn_method"`
			VersionGroup    namedResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		FrontShiny   *string `json:"front_shiny"`
		BackDefault  *string `json:"back_default"`
		BackShiny    *string `json:"back_shiny"`
	} `json:"sprites"`
}

func (p *PokeAPI) pokemon(ctx context.Context, ident string) (*pokemonPayload, error) {
	var payload pokemonPayload
	err := p.fetchJSON(ctx, p.url("pokemon", ident), &payload)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("could not find creature %q: %w", ident, ErrUnknownCreature)
	}
	if err != nil {
		return nil, fmt.Errorf("error while fetching creature %q: %w", ident, err)
	}

	return &payload, nil
}

func (p *PokeAPI) Resolve(ctx context.Context, nameOrDex string) (*Identity, error) {
	ident := strings.ToLower(strings.TrimSpace(nameOrDex))
	if ident == "" {
		return nil, fmt.Errorf("empty identifier: %w", ErrUnknownCreature)
	}
	if dex, err := strconv.Atoi(ident); err == nil && dex <= 0 {
		return nil, fmt.Errorf("dex number %d is not positive: %w", dex, ErrUnknownCreature)
	}

	payload, err := p.pokemon(ctx, ident)
	if err != nil {
		return nil, err
	}

	return &Identity{Dex: payload.ID, Name: payload.Name}, nil
}

func (p *PokeAPI) Creature(ctx context.Context, id *Identity) (*Creature, error) {
	payload, err := p.pokemon(ctx, strconv.Itoa(id.Dex))
	if err != nil {
		return nil, err
	}

	types := make([]analysis.Type, 0, 2)
	sort.Slice(payload.Types, func(i, j int) bool {
		return payload.Types[i].Slot < payload.Types[j].Slot
	})
	for _, entry := range payload.Types {
		typ := analysis.Type(entry.Type.Name)
		if !typ.Valid() {
			return nil, fmt.Errorf("creature %q has unusable type %q: %w",
				payload.Name, entry.Type.Name, analysis.ErrInvalidType)
		}
		types = append(types, typ)
	}

	stats := make(map[string]int, len(payload.Stats))
	for _, entry := range payload.Stats {
		stats[entry.Stat.Name] = entry.BaseStat
	}

	return &Creature{
		Dex:            payload.ID,
		Name:           payload.Name,
		Types:          types,
		HeightDm:       payload.Height,
		WeightHg:       payload.Weight,
		BaseExperience: payload.BaseExperience,
		Stats: BaseStats{
			HP:      stats["hp"],
			Attack:  stats["attack"],
			Defense: stats["defense"],
			SpAtk:   stats["special-attack"],
			SpDef:   stats["special-defense"],
			Speed:   stats["speed"],
		},
		Sprites: Sprites(payload.Sprites),
	}, nil
}

type versionGroupListPayload struct {
	Results []namedResource `json:"results"`
}

// versionGroups memoizes the canonical list of game version groups, which
// backs ErrUnknownGame validation.
func (p *PokeAPI) versionGroups(ctx context.Context) (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.groups != nil {
		return p.groups, nil
	}

	var payload versionGroupListPayload
	err := p.fetchJSON(ctx, p.url("version-group")+"?limit=100", &payload)
	if err != nil {
		return nil, fmt.Errorf("error while listing version groups: %w", err)
	}

	groups := make(map[string]bool, len(payload.Results))
	for _, group := range payload.Results {
		groups[group.Name] = true
	}
	p.groups = groups

	return groups, nil
}

func (p *PokeAPI) validateGame(ctx context.Context, game string) error {
	groups, err := p.versionGroups(ctx)
	if err != nil {
		return err
	}
	if !groups[game] {
		return fmt.Errorf("game %q not recognized: %w", game, ErrUnknownGame)
	}

	return nil
}

type learnsetEntry struct {
	name   string
	method analysis.LearnMethodName
	level  *int
}

// learnset filters the raw move list down to the entries for one version
// group, without resolving per-move details.
func (p *PokeAPI) learnset(payload *pokemonPayload, game string) []learnsetEntry {
	entries := make([]learnsetEntry, 0, len(payload.Moves))
	for _, entry := range payload.Moves {
		for _, detail := range entry.VersionGroupDetails {
			if detail.VersionGroup.Name != game {
				continue
			}

			method := analysis.LearnMethodName(detail.MoveLearnMethod.Name)
			var level *int
			if method == analysis.LevelUp && detail.LevelLearnedAt > 0 {
				lvl := detail.LevelLearnedAt
				level = &lvl
			}
			entries = append(entries, learnsetEntry{
				name:   entry.Move.Name,
				method: method,
				level:  level,
			})
			break
		}
	}

	return entries
}

type movePayload struct {
	Name        string        `json:"name"`
	Power       *int          `json:"power"`
	Accuracy    *int          `json:"accuracy"`
	DamageClass namedResource `json:"damage_class"`
	Type        namedResource `json:"type"`
}

func (p *PokeAPI) Moves(ctx context.Context, id *Identity, game string) ([]LearnableMove, error) {
	err := p.validateGame(ctx, game)
	if err != nil {
		return nil, err
	}

	payload, err := p.pokemon(ctx, strconv.Itoa(id.Dex))
	if err != nil {
		return nil, err
	}

	entries := p.learnset(payload, game)
	moves := make([]LearnableMove, 0, len(entries))
	for _, entry := range entries {
		var move movePayload
		err := p.fetchJSON(ctx, p.url("move", entry.name), &move)
		if err != nil {
			// Moves that cannot be resolved are dropped rather than
			// failing the whole learnset.
			p.logger.Warn("dropping unresolvable move", "move", entry.name, "error", err)
			continue
		}

		moves = append(moves, LearnableMove{
			Name:   entry.name,
			Type:   analysis.Type(move.Type.Name),
			Power:  move.Power,
			Method: entry.method,
			Level:  entry.level,
		})
	}

	return moves, nil
}

type speciesPayload struct {
	EggGroups    []namedResource `json:"egg_groups"`
	HatchCounter *int            `json:"hatch_counter"`
	GenderRate   int             `json:"gender_rate"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
		Version    namedResource `json:"version"`
	} `json:"flavor_text_entries"`
}

func (p *PokeAPI) species(ctx context.Context, id *Identity) (*speciesPayload, error) {
	var payload speciesPayload
	err := p.fetchJSON(ctx, p.url("pokemon-species", strconv.Itoa(id.Dex)), &payload)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("could not find species for %q: %w", id.Name, ErrUnknownCreature)
	}
	if err != nil {
		return nil, fmt.Errorf("error while fetching species for %q: %w", id.Name, err)
	}

	return &payload, nil
}

func (p *PokeAPI) Descriptions(ctx context.Context, id *Identity, language string) (map[string]string, error) {
	payload, err := p.species(ctx, id)
	if err != nil {
		return nil, err
	}

	descriptions := make(map[string]string)
	for _, entry := range payload.FlavorTextEntries {
		if entry.Language.Name != language {
			continue
		}
		// Flavor text carries game-boy line and page breaks.
		text := strings.NewReplacer("\n", " ", "\f", " ").Replace(entry.FlavorText)
		descriptions[entry.Version.Name] = text
	}

	return descriptions, nil
}

type abilityPayload struct {
	EffectEntries []struct {
		Effect      string        `json:"effect"`
		ShortEffect string        `json:"short_effect"`
		Language    namedResource `json:"language"`
	} `json:"effect_entries"`
}

func (p *PokeAPI) Abilities(ctx context.Context, id *Identity) ([]Ability, error) {
	payload, err := p.pokemon(ctx, strconv.Itoa(id.Dex))
	if err != nil {
		return nil, err
	}

	abilities := make([]Ability, 0, len(payload.Abilities))
	for _, entry := range payload.Abilities {
		var detail abilityPayload
		err := p.fetchJSON(ctx, p.url("ability", entry.Ability.Name), &detail)
		if err != nil {
			return nil, fmt.Errorf("error while fetching ability %q: %w", entry.Ability.Name, err)
		}

		ability := Ability{Name: entry.Ability.Name, IsHidden: entry.IsHidden}
		for _, effect := range detail.EffectEntries {
			if effect.Language.Name == "en" {
				ability.ShortEffect = effect.ShortEffect
				ability.Effect = effect.Effect
				break
			}
		}
		abilities = append(abilities, ability)
	}

	return abilities, nil
}

type chainNode struct {
	Species          namedResource    `json:"species"`
	EvolvesTo        []chainNode      `json:"evolves_to"`
	EvolutionDetails []map[string]any `json:"evolution_details"`
}

type evolutionChainPayload struct {
	Chain chainNode `json:"chain"`
}

func (p *PokeAPI) EvolutionChain(ctx context.Context, id *Identity) ([]EvolutionPath, error) {
	species, err := p.species(ctx, id)
	if err != nil {
		return nil, err
	}

	// Some species legitimately have no chain at all.
	if species.EvolutionChain.URL == "" {
		return nil, nil
	}

	var payload evolutionChainPayload
	err = p.fetchJSON(ctx, species.EvolutionChain.URL, &payload)
	if err != nil {
		return nil, fmt.Errorf("error while fetching evolution chain for %q: %w", id.Name, err)
	}

	var paths []EvolutionPath
	expandChain(payload.Chain, nil, &paths)

	// Prefer the paths that actually pass through the requested creature;
	// fall back to the whole chain for forms the chain never names.
	relevant := make([]EvolutionPath, 0, len(paths))
	for _, path := range paths {
		for _, step := range path.Steps {
			if step.FromSpecies == id.Name || step.ToSpecies == id.Name {
				relevant = append(relevant, path)
				break
			}
		}
	}
	if len(relevant) == 0 {
		relevant = paths
	}

	return relevant, nil
}

// expandChain walks the evolution tree depth-first, emitting one path per
// leaf (and per distinct evolution condition on branching nodes).
func expandChain(node chainNode, current []EvolutionStep, paths *[]EvolutionPath) {
	if len(node.EvolvesTo) == 0 {
		steps := make([]EvolutionStep, len(current))
		copy(steps, current)
		*paths = append(*paths, EvolutionPath{Steps: steps})
		return
	}

	for _, child := range node.EvolvesTo {
		details := child.EvolutionDetails
		if len(details) == 0 {
			details = []map[string]any{{}}
		}
		for _, detail := range details {
			step := evolutionStep(node.Species.Name, child.Species.Name, detail)
			expandChain(child, append(current, step), paths)
		}
	}
}

func evolutionStep(from, to string, detail map[string]any) EvolutionStep {
	step := EvolutionStep{FromSpecies: from, ToSpecies: to}

	if trigger, ok := detail["trigger"].(map[string]any); ok {
		step.Trigger, _ = trigger["name"].(string)
	}
	if lvl, ok := detail["min_level"].(float64); ok {
		minLevel := int(lvl)
		step.MinLevel = &minLevel
	}
	if item, ok := detail["item"].(map[string]any); ok {
		if name, ok := item["name"].(string); ok {
			step.Item = &name
		}
	}

	// Remaining detail entries become free-form conditions.
	conditions := make(map[string]string)
	for key, value := range detail {
		switch key {
		case "trigger", "min_level", "item":
			continue
		}
		switch v := value.(type) {
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				conditions[key] = name
			}
		case string:
			if v != "" {
				conditions[key] = v
			}
		case bool:
			if v {
				conditions[key] = "true"
			}
		case float64:
			conditions[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if len(conditions) > 0 {
		step.Conditions = conditions
	}

	return step
}

type encounterPayload []struct {
	LocationArea   namedResource `json:"location_area"`
	VersionDetails []struct {
		Version          namedResource `json:"version"`
		MaxChance        int           `json:"max_chance"`
		EncounterDetails []struct {
			Method          namedResource   `json:"method"`
			MinLevel        int             `json:"min_level"`
			MaxLevel        int             `json:"max_level"`
			Chance          int             `json:"chance"`
			ConditionValues []namedResource `json:"condition_values"`
		} `json:"encounter_details"`
	} `json:"version_details"`
}

func (p *PokeAPI) Encounters(ctx context.Context, id *Identity) ([]EncounterLocation, error) {
	var payload encounterPayload
	err := p.fetchJSON(ctx, p.url("pokemon", strconv.Itoa(id.Dex), "encounters"), &payload)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("could not find encounters for %q: %w", id.Name, ErrUnknownCreature)
	}
	if err != nil {
		return nil, fmt.Errorf("error while fetching encounters for %q: %w", id.Name, err)
	}

	locations := make([]EncounterLocation, 0, len(payload))
	for _, entry := range payload {
		versions := make([]EncounterVersion, 0, len(entry.VersionDetails))
		for _, versionDetail := range entry.VersionDetails {
			details := make([]EncounterDetail, 0, len(versionDetail.EncounterDetails))
			for _, detail := range versionDetail.EncounterDetails {
				values := make([]string, 0, len(detail.ConditionValues))
				for _, value := range detail.ConditionValues {
					values = append(values, value.Name)
				}
				details = append(details, EncounterDetail{
					Method:          detail.Method.Name,
					MinLevel:        detail.MinLevel,
					MaxLevel:        detail.MaxLevel,
					Chance:          detail.Chance,
					ConditionValues: values,
				})
			}
			versions = append(versions, EncounterVersion{
				Version:   versionDetail.Version.Name,
				MaxChance: versionDetail.MaxChance,
				Details:   details,
			})
		}
		locations = append(locations, EncounterLocation{
			LocationArea: entry.LocationArea.Name,
			Versions:     versions,
		})
	}

	return locations, nil
}

// genderRatio converts the upstream -1/0-8 gender rate scale into
// percentages; -1 means genderless.
func genderRatio(rate int) GenderRatio {
	if rate < 0 {
		return GenderRatio{}
	}
	female := float64(rate) / 8 * 100
	return GenderRatio{FemalePercent: female, MalePercent: 100 - female}
}

func (p *PokeAPI) Breeding(ctx context.Context, id *Identity, game string) (*Breeding, error) {
	species, err := p.species(ctx, id)
	if err != nil {
		return nil, err
	}

	groups := make([]string, 0, len(species.EggGroups))
	for _, group := range species.EggGroups {
		groups = append(groups, group.Name)
	}

	var hatchSteps *int
	if species.HatchCounter != nil {
		// In-game hatch step formula: (counter + 1) * 255.
		steps := (*species.HatchCounter + 1) * 255
		hatchSteps = &steps
	}

	payload, err := p.pokemon(ctx, strconv.Itoa(id.Dex))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var eggMoves []string
	record := func(entries []learnsetEntry) {
		for _, entry := range entries {
			if entry.method == analysis.Egg && !seen[entry.name] {
				seen[entry.name] = true
				eggMoves = append(eggMoves, entry.name)
			}
		}
	}

	if game != "" {
		record(p.learnset(payload, game))
	} else {
		// No game scope: aggregate egg moves across every version group.
		for _, entry := range payload.Moves {
			for _, detail := range entry.VersionGroupDetails {
				if analysis.LearnMethodName(detail.MoveLearnMethod.Name) == analysis.Egg && !seen[entry.Move.Name] {
					seen[entry.Move.Name] = true
					eggMoves = append(eggMoves, entry.Move.Name)
				}
			}
		}
	}
	sort.Strings(eggMoves)

	return &Breeding{
		EggGroups:  groups,
		Gender:     genderRatio(species.GenderRate),
		HatchSteps: hatchSteps,
		EggMoves:   eggMoves,
	}, nil
}
