package models

import "time"

type Member struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string
	Axis      string `gorm:"not null"`
	Cargo     string `gorm:"not null"`
	Photo     string
	CreatedAt time.Time
}

func DefaultMemberCatalog() []Member {
	return []Member{
		{Name: "Ana Carolina Silva", Axis: AxisSales, Cargo: "Líder de Vendas"},
		{Name: "Bruno Mendes", Axis: AxisConnections, Cargo: "Analista de Parcerias"},
		{Name: "Carla Ferreira", Axis: AxisExperience, Cargo: "Gestora de CX"},
		{Name: "Diego Santos", Axis: AxisSales, Cargo: "Consultor de Vendas"},
		{Name: "Eduarda Lima", Axis: AxisConnections, Cargo: "Executiva de Parcerias"},
		{Name: "Felipe Costa", Axis: AxisExperience, Cargo: "Coordenador de Sucesso do Cliente"},
	}
}
