package msdf

import (
	"sync"

	"github.com/j-schauer/libMSDF/otf"
)

// GeneratorPool manages a pool of generators for concurrent use.
// All generators share the pool's configuration.
type GeneratorPool struct {
	pool   sync.Pool
	config Config
}

// NewGeneratorPool creates a new generator pool with the given configuration.
func NewGeneratorPool(config Config) *GeneratorPool {
	return &GeneratorPool{
		config: config,
		pool: sync.Pool{
			New: func() interface{} {
				return NewGenerator(config)
			},
		},
	}
}

// Get retrieves a generator from the pool.
func (p *GeneratorPool) Get() *Generator {
	return p.pool.Get().(*Generator)
}

// Put returns a generator to the pool.
func (p *GeneratorPool) Put(g *Generator) {
	// Reset config in case it was modified
	g.config = p.config
	p.pool.Put(g)
}

// Generate renders a 3-channel MSDF bitmap using a pooled generator.
func (p *GeneratorPool) Generate(font otf.Font, r rune) (*Result, error) {
	gen := p.Get()
	defer p.Put(gen)
	return gen.Generate(font, r)
}

// GenerateMTSDF renders a 4-channel MTSDF bitmap using a pooled generator.
func (p *GeneratorPool) GenerateMTSDF(font otf.Font, r rune) (*Result, error) {
	gen := p.Get()
	defer p.Put(gen)
	return gen.GenerateMTSDF(font, r)
}
