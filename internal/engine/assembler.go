package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"quizzer-backend/internal/cache"
	"quizzer-backend/internal/curriculum"
	"quizzer-backend/internal/models"
)

// Assembly is a generated question set together with the difficulty profile
// it was built from.
type Assembly struct {
	Questions         []models.Question        `json:"questions"`
	DifficultyProfile models.DifficultyProfile `json:"difficultyProfile"`
}

// AssembleParams carries everything the assembler needs for one quiz.
type AssembleParams struct {
	Subject    string
	Grade      int
	Stream     string
	Bucket     string
	Count      int
	Difficulty string
}

// Assembler builds de-duplicated question sets and caches them briefly so
// bursts of identical requests do not regenerate the same quiz.
type Assembler struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewAssembler(c cache.Cache, ttl time.Duration) *Assembler {
	return &Assembler{cache: c, ttl: ttl}
}

// Assemble returns a question set of exactly params.Count questions. Cached
// assemblies are served before curriculum validation, so a hit always wins.
func (a *Assembler) Assemble(ctx context.Context, params AssembleParams) (*Assembly, error) {
	key := cacheKey(params)
	if raw, ok := a.cache.Get(ctx, key); ok {
		var cached Assembly
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	if err := curriculum.Validate(params.Subject, params.Grade, params.Stream); err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	result := a.assemble(params, seed)

	if raw, err := json.Marshal(result); err == nil {
		a.cache.Set(ctx, key, raw, a.ttl)
	}
	return result, nil
}

// assemble is the deterministic core: one seed drives the base synthesis
// offset and every shuffle, which keeps generation reproducible in tests.
func (a *Assembler) assemble(params AssembleParams, seed uint64) *Assembly {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	profile := SelectDistribution(params.Bucket, params.Difficulty, params.Count)

	questions := make([]models.Question, 0, params.Count)
	usedPrompts := make(map[string]struct{})
	syntheticSeed := rng.IntN(1000)

	appendUnique := func(difficulty string) {
		for {
			q := Synthesize(params.Subject, difficulty, params.Grade, syntheticSeed, rng)
			syntheticSeed++
			if _, dup := usedPrompts[q.Prompt]; dup {
				continue
			}
			usedPrompts[q.Prompt] = struct{}{}
			q.ID = fmt.Sprintf("%s-%s-%d-%06x", params.Subject, difficulty, len(questions), rng.IntN(1<<24))
			questions = append(questions, q)
			return
		}
	}

	for _, level := range []struct {
		name string
		want int
	}{
		{"easy", profile.Easy},
		{"medium", profile.Medium},
		{"hard", profile.Hard},
	} {
		for i := 0; i < level.want && len(questions) < params.Count; i++ {
			appendUnique(level.name)
		}
	}

	// Profiles are shaped for 5 questions; pad with easy ones for larger
	// requests.
	for len(questions) < params.Count {
		appendUnique("easy")
	}
	questions = questions[:params.Count]

	return &Assembly{Questions: questions, DifficultyProfile: profile}
}

func cacheKey(p AssembleParams) string {
	stream := p.Stream
	if stream == "" {
		stream = "none"
	}
	bucket := p.Bucket
	if bucket == "" {
		bucket = BucketNew
	}
	difficulty := p.Difficulty
	if difficulty == "" {
		difficulty = "MIX"
	}
	return fmt.Sprintf("gen:%s:%d:%s:%s:%d:%s", p.Subject, p.Grade, stream, bucket, p.Count, difficulty)
}
