package entity

// Marca representa uma marca de celular (Samsung, Apple...).
type Marca struct {
	ID   int64
	Nome string
}

// ModeloCelular representa um modelo de aparelho de uma marca.
type ModeloCelular struct {
	ID         int64
	IDMarca    int64
	NomeModelo string
}

// ModeloResumo é a linha de listagem com o nome da marca resolvido.
type ModeloResumo struct {
	ID         int64
	NomeModelo string
	MarcaNome  string
}
