package generator

import (
	"context"

	"metadata-workers/internal/models"
	"metadata-workers/internal/seo/detect"
	"metadata-workers/internal/seo/sanitize"
	"metadata-workers/internal/seo/templates"
	"metadata-workers/internal/seo/tone"
	"metadata-workers/internal/seo/topics"
)

// TemplateOptions tune the template generation path. Zero values fall back
// to the documented defaults.
type TemplateOptions struct {
	TitleCount       int
	DescriptionCount int
	SocialCount      int
	DefaultAudience  string
	// Seed pins the sampler for deterministic tests. 0 keeps the
	// production time-seeded behavior.
	Seed int64
}

func (o TemplateOptions) withDefaults() TemplateOptions {
	if o.TitleCount <= 0 {
		o.TitleCount = templates.TitleSampleSize
	}
	if o.DescriptionCount <= 0 {
		o.DescriptionCount = templates.DescriptionSampleSize
	}
	if o.SocialCount <= 0 {
		o.SocialCount = templates.SocialSampleSize
	}
	if o.DefaultAudience == "" {
		o.DefaultAudience = "professionals"
	}
	return o
}

// TemplateGenerator runs the full template pipeline: sanitize, extract
// topics, detect a content type, sample a bucket, interpolate, transform
// tone. It never fails on well-formed input; empty content still yields
// copy built from the default topics.
type TemplateGenerator struct {
	opts        TemplateOptions
	sanitizer   *sanitize.Sanitizer
	extractor   *topics.Extractor
	detector    *detect.Detector
	store       *templates.Store
	transformer *tone.Transformer
}

func NewTemplateGenerator(opts TemplateOptions) *TemplateGenerator {
	return &TemplateGenerator{
		opts:        opts.withDefaults(),
		sanitizer:   sanitize.NewSanitizer(),
		extractor:   topics.NewExtractor(),
		detector:    detect.NewDetector(),
		store:       templates.NewStore(),
		transformer: tone.NewTransformer(),
	}
}

func (g *TemplateGenerator) Generate(_ context.Context, req models.GenerationRequest) (*models.GeneratedCopy, error) {
	text := g.sanitizer.Clean(req.Content)

	topicSet := g.extractor.Extract(text, 3)
	detected := g.detector.Detect(text, req.ContentType)
	bucket := g.store.Bucket(detected)

	audience := req.TargetAudience
	if audience == "" {
		audience = g.opts.DefaultAudience
	}

	sampler := templates.NewSampler(g.opts.Seed)
	titles := sampler.Interpolate(sampler.Sample(bucket.Titles, g.opts.TitleCount), topicSet, audience)
	descriptions := sampler.Interpolate(sampler.Sample(bucket.Descriptions, g.opts.DescriptionCount), topicSet, audience)
	social := sampler.Interpolate(sampler.Sample(bucket.Social, g.opts.SocialCount), topicSet, audience)

	return &models.GeneratedCopy{
		Titles:              g.transformer.Apply(titles, req.Tone),
		Descriptions:        g.transformer.Apply(descriptions, req.Tone),
		SocialCopy:          g.transformer.ApplySocial(social, req.Tone),
		DetectedContentType: detected,
	}, nil
}
