package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/dto"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/usecase"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — mapa protegido por mutex, con hooks para inyectar
// errores y sincronizar el sondeo de unicidad en los tests de concurrencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	items    map[uuid.UUID]entity.Product
	creates  int
	getsName int

	onGetByName func() // se invoca antes de resolver el sondeo, si no es nil
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[uuid.UUID]entity.Product)}
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, code uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.items[code]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	if f.onGetByName != nil {
		f.onGetByName()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getsName++
	for _, p := range f.items {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product entity.Product) (entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.items[product.Code] = product
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product entity.Product) (entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[product.Code]; !ok {
		return entity.Product{}, domain.NewNotFound("product", product.Code.String())
	}
	f.items[product.Code] = product
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, code uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[code]; !ok {
		return domain.NewNotFound("product", code.String())
	}
	delete(f.items, code)
	return nil
}

func (f *fakeProductRepo) Ping(ctx context.Context) error { return nil }

type fakeImageStore struct {
	uploads int
	err     error
}

func (f *fakeImageStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	f.uploads++
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.s3.us-east-1.amazonaws.com/" + filename, nil
}

func productRequest(name string, price float64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        name,
		Description: "descripción de prueba",
		Price:       decimal.NewFromFloat(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_YGet_RoundTrip(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	created, err := uc.Create(context.Background(), productRequest("Laptop", 999.99), nil)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.Code, "el create debe devolver el código generado")
	assert.True(t, created.Price.Equal(decimal.NewFromFloat(999.99)))
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := uc.Get(context.Background(), uuid.MustParse(created.Code))
	require.NoError(t, err)
	assert.Equal(t, created.Code, got.Code)
	assert.Equal(t, "Laptop", got.Name)
}

func TestProductCreate_PrecioInvalido_NoPersiste(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	_, err := uc.Create(context.Background(), productRequest("Laptop", 0), nil)
	require.Error(t, err)

	var invalid *domain.InvalidPriceError
	assert.ErrorAs(t, err, &invalid, "precio <= 0 debe producir InvalidPriceError")
	assert.Equal(t, 0, repo.creates, "no debe llegar ninguna escritura al repo")
	assert.Equal(t, 0, repo.getsName, "el precio se valida antes del sondeo")
}

func TestProductCreate_NombreDuplicado_RetornaDuplicate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	_, err := uc.Create(context.Background(), productRequest("Laptop", 100), nil)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), productRequest("Laptop", 200), nil)
	require.Error(t, err)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "name", dup.Field)
	assert.Equal(t, "Laptop", dup.Value)
	assert.Equal(t, 1, repo.creates, "el duplicado no debe persistirse")
}

func TestProductCreate_ConImagen_GuardaURL(t *testing.T) {
	repo := newFakeProductRepo()
	images := &fakeImageStore{}
	uc := usecase.NewProductUseCase(repo, images)

	image := &dto.ImageUpload{
		Filename:    "laptop.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	}
	created, err := uc.Create(context.Background(), productRequest("Laptop", 100), image)
	require.NoError(t, err)
	assert.Equal(t, 1, images.uploads)
	assert.Contains(t, created.ImageURL, "laptop.png")
}

func TestProductCreate_FallaSubida_RetornaImageUploadError(t *testing.T) {
	repo := newFakeProductRepo()
	images := &fakeImageStore{err: errors.New("bucket unavailable")}
	uc := usecase.NewProductUseCase(repo, images)

	image := &dto.ImageUpload{Filename: "x.png", ContentType: "image/png", Content: strings.NewReader("x")}
	_, err := uc.Create(context.Background(), productRequest("Laptop", 100), image)
	require.Error(t, err)

	var upload *domain.ImageUploadError
	require.ErrorAs(t, err, &upload)
	assert.ErrorContains(t, upload.Err, "bucket unavailable", "la causa debe envolverse")
	assert.Equal(t, 0, repo.creates, "si la subida falla no se persiste el producto")
}

func TestProductGet_NoExiste_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeImageStore{})

	_, err := uc.Get(context.Background(), uuid.New())
	require.Error(t, err)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProductList_Vacio_RetornaListaVaciaSinError(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeImageStore{})

	out, err := uc.List(context.Background())
	require.NoError(t, err, "catálogo vacío no es un error")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_NoExiste_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeImageStore{})

	_, err := uc.Update(context.Background(), uuid.New(), dto.UpdateProductRequest(productRequest("Laptop", 100)), nil)
	require.Error(t, err)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProductUpdate_MismoNombre_NoSondeaUnicidad(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	created, err := uc.Create(context.Background(), productRequest("Laptop", 100), nil)
	require.NoError(t, err)
	probesAfterCreate := repo.getsName

	updated, err := uc.Update(context.Background(), uuid.MustParse(created.Code),
		dto.UpdateProductRequest(productRequest("Laptop", 150)), nil)
	require.NoError(t, err)
	assert.Equal(t, probesAfterCreate, repo.getsName,
		"con el nombre sin cambiar no debe haber sondeo de unicidad")
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(150)))
}

func TestProductUpdate_NombreOcupadoPorOtro_RetornaDuplicate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	_, err := uc.Create(context.Background(), productRequest("Laptop", 100), nil)
	require.NoError(t, err)
	mouse, err := uc.Create(context.Background(), productRequest("Mouse", 20), nil)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), uuid.MustParse(mouse.Code),
		dto.UpdateProductRequest(productRequest("Laptop", 25)), nil)
	require.Error(t, err)

	var dup *domain.DuplicateError
	assert.ErrorAs(t, err, &dup, "renombrar al nombre de otro producto es colisión")
}

func TestProductUpdate_PreservaCreatedAtYRefrescaUpdatedAt(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	created, err := uc.Create(context.Background(), productRequest("Laptop", 100), nil)
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), uuid.MustParse(created.Code),
		dto.UpdateProductRequest(productRequest("Laptop Pro", 150)), nil)
	require.NoError(t, err)

	assert.Equal(t, created.Code, updated.Code)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProductDelete_NoExiste_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeImageStore{})

	err := uc.Delete(context.Background(), uuid.New())
	require.Error(t, err)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProductDelete_Existente_DesapareceDelListado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	created, err := uc.Create(context.Background(), productRequest("Laptop", 100), nil)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), uuid.MustParse(created.Code)))

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de carrera sondeo/escritura
// ──────────────────────────────────────────────────────────────────────────────

// TestProductCreate_CarreraSondeoEscritura documenta la ventana aceptada:
// dos creates concurrentes con el mismo nombre pueden pasar ambos el sondeo
// (la escritura no es condicional), terminando con dos registros. El test
// sincroniza ambos sondeos con una barrera para forzar el entrelazado.
func TestProductCreate_CarreraSondeoEscritura(t *testing.T) {
	repo := newFakeProductRepo()

	var barrier sync.WaitGroup
	barrier.Add(2)
	repo.onGetByName = func() {
		barrier.Done()
		barrier.Wait() // ambos sondeos ven la tabla sin el nombre
	}

	uc := usecase.NewProductUseCase(repo, &fakeImageStore{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), productRequest("Laptop", 100), nil)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 2, repo.creates,
		"ambos creates pasan el sondeo dentro de la ventana y persisten")
}
