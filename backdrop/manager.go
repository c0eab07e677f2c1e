package backdrop

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/aurora.kage
var auroraEffectSrc []byte

//go:embed shaders/grid.kage
var gridEffectSrc []byte

//go:embed shaders/grain.kage
var grainEffectSrc []byte

//go:embed shaders/vignette.kage
var vignetteEffectSrc []byte

// effectSources maps effect IDs to their Kage source code
var effectSources = map[string][]byte{
	"aurora":   auroraEffectSrc,
	"grid":     gridEffectSrc,
	"grain":    grainEffectSrc,
	"vignette": vignetteEffectSrc,
}

// Manager handles backdrop effect compilation, caching, and application
type Manager struct {
	// Compiled shader cache
	shaders map[string]*ebiten.Shader

	// Intermediate buffers for effect chaining (ping-pong)
	bufferA *ebiten.Image
	bufferB *ebiten.Image

	// Frame counter for animated effects
	frame int

	// Theme palette fed to effects as uniforms
	accent [3]float32
	base   [3]float32

	// Cached effect pipeline (rebuilt only when the chain changes)
	cachedChainIDs []string
	cachedChain    []*ebiten.Shader
}

// NewManager creates a new backdrop manager
func NewManager() *Manager {
	return &Manager{
		shaders: make(map[string]*ebiten.Shader),
		accent:  [3]float32{1, 1, 1},
	}
}

// SetPalette updates the colors passed to effects. Call on theme change.
func (m *Manager) SetPalette(accent, base color.NRGBA) {
	m.accent = rgbVec(accent)
	m.base = rgbVec(base)
}

// rgbVec converts a color to normalized RGB components for shader uniforms
func rgbVec(c color.NRGBA) [3]float32 {
	return [3]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}

// IncrementFrame advances the frame counter for animated effects
func (m *Manager) IncrementFrame() {
	m.frame++
}

// Frame returns the current frame count
func (m *Manager) Frame() int {
	return m.frame
}

// LoadEffect compiles and caches an effect by ID
func (m *Manager) LoadEffect(id string) error {
	// Already loaded?
	if _, ok := m.shaders[id]; ok {
		return nil
	}

	// Get source
	src, ok := effectSources[id]
	if !ok {
		return fmt.Errorf("unknown backdrop effect: %s", id)
	}

	// Compile
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("failed to compile backdrop effect %s: %w", id, err)
	}

	m.shaders[id] = shader
	return nil
}

// PreloadEffects loads all effects in the given list
func (m *Manager) PreloadEffects(ids []string) {
	for _, id := range ids {
		if err := m.LoadEffect(id); err != nil {
			log.Printf("Warning: failed to load backdrop effect %s: %v", id, err)
		}
	}
}

// ensureBuffers creates or resizes the ping-pong buffers to match dimensions
func (m *Manager) ensureBuffers(width, height int) {
	// Check if bufferA needs (re)creation
	if m.bufferA != nil {
		bw, bh := m.bufferA.Bounds().Dx(), m.bufferA.Bounds().Dy()
		if bw != width || bh != height {
			m.bufferA.Deallocate()
			m.bufferA = nil
		}
	}
	if m.bufferA == nil {
		m.bufferA = ebiten.NewImage(width, height)
	}

	// Check if bufferB needs (re)creation
	if m.bufferB != nil {
		bw, bh := m.bufferB.Bounds().Dx(), m.bufferB.Bounds().Dy()
		if bw != width || bh != height {
			m.bufferB.Deallocate()
			m.bufferB = nil
		}
	}
	if m.bufferB == nil {
		m.bufferB = ebiten.NewImage(width, height)
	}
}

// chainMatches checks if the given effect IDs match the cached chain
func (m *Manager) chainMatches(ids []string) bool {
	if len(ids) != len(m.cachedChainIDs) {
		return false
	}
	for i, id := range ids {
		if m.cachedChainIDs[i] != id {
			return false
		}
	}
	return true
}

// rebuildChain loads, sorts, and filters effects, caching the result
func (m *Manager) rebuildChain(ids []string) {
	// Load any missing effects
	for _, id := range ids {
		if _, ok := m.shaders[id]; !ok {
			if err := m.LoadEffect(id); err != nil {
				log.Printf("Warning: backdrop effect %s not available: %v", id, err)
			}
		}
	}

	// Cache the full input list for change detection
	m.cachedChainIDs = make([]string, len(ids))
	copy(m.cachedChainIDs, ids)

	// Sort by weight (descending), ID (ascending)
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		wi, wj := GetEffectWeight(sorted[i]), GetEffectWeight(sorted[j])
		if wi != wj {
			return wi > wj
		}
		return sorted[i] < sorted[j]
	})

	// Keep only effects that compiled successfully
	m.cachedChain = make([]*ebiten.Shader, 0, len(sorted))
	for _, id := range sorted {
		if s, ok := m.shaders[id]; ok {
			m.cachedChain = append(m.cachedChain, s)
		}
	}
}

// Apply draws src to dst with the specified effect chain applied.
// src is expected to be a base image filled with the theme background;
// generator effects (aurora, grid) add light on top of it and overlay
// effects (grain, vignette) modulate the running result.
// If the chain is empty or nothing compiled, src is drawn directly to dst.
// Returns true if effects were applied, false if direct draw was used.
func (m *Manager) Apply(dst, src *ebiten.Image, ids []string) bool {
	if src == nil {
		return false
	}
	if len(ids) == 0 {
		dst.DrawImage(src, nil)
		return false
	}

	// Rebuild cache only when the chain changes
	if !m.chainMatches(ids) {
		m.rebuildChain(ids)
	}

	chain := m.cachedChain
	if len(chain) == 0 {
		dst.DrawImage(src, nil)
		return false
	}

	srcW, srcH := src.Bounds().Dx(), src.Bounds().Dy()

	// Uniforms shared by all effects in the chain
	uniforms := map[string]interface{}{
		"Time":   float32(m.frame),
		"Accent": m.accent[:],
		"Base":   m.base[:],
	}

	// Single effect case - draw directly to destination
	if len(chain) == 1 {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = src
		op.Uniforms = uniforms
		dst.DrawRectShader(srcW, srcH, chain[0], op)
		return true
	}

	// Multiple effects - chain through ping-pong buffers
	m.ensureBuffers(srcW, srcH)

	// Track current input for each pass
	currentInput := src
	buffers := [2]*ebiten.Image{m.bufferA, m.bufferB}
	bufferIndex := 1

	for i, shader := range chain {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = currentInput
		op.Uniforms = uniforms

		if i == len(chain)-1 {
			// Last effect writes to destination
			dst.DrawRectShader(srcW, srcH, shader, op)
		} else {
			// Intermediate effects write to ping-pong buffer
			outputBuffer := buffers[bufferIndex%2]
			outputBuffer.Clear()
			outputBuffer.DrawRectShader(srcW, srcH, shader, op)
			currentInput = outputBuffer
			bufferIndex++
		}
	}

	return true
}
