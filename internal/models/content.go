package models

import "time"

const (
	AudienceMember  = "member"
	AudienceTrainee = "trainee"
)

const (
	AxisSales       = "sales"
	AxisConnections = "connections"
	AxisExperience  = "experience"
)

type ContentDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ContentItem struct {
	ID        uint              `gorm:"primaryKey"`
	Name      string            `gorm:"not null"`
	Audience  string            `gorm:"not null;index"`
	Axis      string            `gorm:"not null;index"`
	Text      string            `gorm:"not null"`
	Documents []ContentDocument `gorm:"serializer:json"`
	Videos    []string          `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidAudience(audience string) bool {
	return audience == AudienceMember || audience == AudienceTrainee
}

func IsValidAxis(axis string) bool {
	return axis == AxisSales || axis == AxisConnections || axis == AxisExperience
}

func DefaultContentCatalog() []ContentItem {
	return []ContentItem{
		{
			Name:     "Técnicas de Prospecção",
			Audience: AudienceMember,
			Axis:     AxisSales,
			Text:     "Material completo sobre técnicas avançadas de prospecção B2B, incluindo metodologias como SPIN Selling e Challenger Sale.",
			Documents: []ContentDocument{
				{Name: "Guia de Prospecção.pdf", URL: "https://example.com/doc1"},
				{Name: "Templates de Email.pdf", URL: "https://example.com/doc2"},
			},
			Videos: []string{"https://youtube.com/watch?v=abc123"},
		},
		{
			Name:     "Onboarding Comercial",
			Audience: AudienceTrainee,
			Axis:     AxisSales,
			Text:     "Conteúdo introdutório para novos trainees do setor comercial: processos internos, ferramentas e métricas de desempenho.",
			Documents: []ContentDocument{
				{Name: "Manual do Trainee.pdf", URL: "https://example.com/doc3"},
			},
			Videos: []string{},
		},
		{
			Name:      "Networking e Parcerias",
			Audience:  AudienceMember,
			Axis:      AxisConnections,
			Text:      "Melhores práticas de networking e construção de parcerias estratégicas de longo prazo.",
			Documents: []ContentDocument{},
			Videos:    []string{"https://youtube.com/watch?v=def456", "https://youtube.com/watch?v=ghi789"},
		},
		{
			Name:     "Jornada do Cliente",
			Audience: AudienceMember,
			Axis:     AxisExperience,
			Text:     "Técnicas para mapear e otimizar a jornada do cliente: customer success, pontos de contato críticos e encantamento.",
			Documents: []ContentDocument{
				{Name: "CRM Best Practices.pdf", URL: "https://example.com/doc4"},
			},
			Videos: []string{},
		},
		{
			Name:     "Introdução a Conexões",
			Audience: AudienceTrainee,
			Axis:     AxisConnections,
			Text:     "Fundamentos de networking para trainees: construção de relacionamentos profissionais e primeiros contatos com clientes.",
			Documents: []ContentDocument{
				{Name: "Guia de Networking.pdf", URL: "https://example.com/doc5"},
			},
			Videos: []string{"https://youtube.com/watch?v=jkl012"},
		},
		{
			Name:     "Customer Experience Avançado",
			Audience: AudienceMember,
			Axis:     AxisExperience,
			Text:     "Metodologias avançadas de experiência do consumidor: pesquisas NPS, touchpoints e estratégias de fidelização.",
			Documents: []ContentDocument{
				{Name: "Template NPS.xlsx", URL: "https://example.com/doc6"},
				{Name: "Guia de CX.pdf", URL: "https://example.com/doc7"},
			},
			Videos: []string{"https://youtube.com/watch?v=mno345"},
		},
		{
			Name:      "Básico de Experiência do Cliente",
			Audience:  AudienceTrainee,
			Axis:      AxisExperience,
			Text:      "Introdução às práticas de experiência do consumidor para trainees: atendimento, comunicação empática e gestão de feedbacks.",
			Documents: []ContentDocument{},
			Videos:    []string{"https://youtube.com/watch?v=pqr678"},
		},
		{
			Name:     "Fundamentos de Conexões",
			Audience: AudienceTrainee,
			Axis:     AxisConnections,
			Text:     "Conceitos básicos de conexões comerciais para trainees: etiqueta de negócios e primeiros passos no networking.",
			Documents: []ContentDocument{
				{Name: "Conceitos de Networking.pdf", URL: "https://example.com/doc8"},
			},
			Videos: []string{},
		},
	}
}
