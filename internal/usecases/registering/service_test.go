package registering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	allocatormocks "github.com/vfg2006/sales-ledger-api/internal/usecases/identifying/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		req       *domain.RegisterCustomerRequest
		setup     func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator)
		expectErr error
		validate  func(t *testing.T, customer *domain.Customer)
	}{
		{
			name: "Cadastro válido normaliza telefone e email antes de gravar",
			req: &domain.RegisterCustomerRequest{
				FirstName: "  Maria  ",
				LastName:  "Silva",
				Phone:     "(415) 555-0132",
				Email:     " Maria.Silva@Example.COM ",
			},
			setup: func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				repo.EXPECT().GetByPhone("4155550132").Return(nil, nil)
				repo.EXPECT().GetByEmail("maria.silva@example.com").Return(nil, nil)
				allocator.EXPECT().NextCustomerID().Return("C00001", nil)
				repo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "C00001", customer.ID)
				assert.Equal(t, "Maria", customer.FirstName)
				assert.Equal(t, "Silva", customer.LastName)
				assert.Equal(t, "4155550132", customer.Phone)
				assert.Equal(t, "maria.silva@example.com", customer.Email)
				assert.False(t, customer.RegisteredAt.IsZero())
			},
		},
		{
			name: "Telefone com código do país 1 é aceito com 11 dígitos",
			req: &domain.RegisterCustomerRequest{
				FirstName: "João",
				LastName:  "Souza",
				Phone:     "+1 415 555 0132",
			},
			setup: func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				repo.EXPECT().GetByPhone("4155550132").Return(nil, nil)
				allocator.EXPECT().NextCustomerID().Return("C00002", nil)
				repo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "4155550132", customer.Phone)
				assert.Empty(t, customer.Email)
			},
		},
		{
			name: "Campos obrigatórios ausentes são rejeitados",
			req: &domain.RegisterCustomerRequest{
				FirstName: "Maria",
				Phone:     "4155550132",
			},
			setup:     func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {},
			expectErr: ErrMissingRequiredData,
		},
		{
			name: "Telefone com menos de 10 dígitos é rejeitado",
			req: &domain.RegisterCustomerRequest{
				FirstName: "Maria",
				LastName:  "Silva",
				Phone:     "555-0132",
			},
			setup:     func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {},
			expectErr: ErrInvalidPhone,
		},
		{
			name: "Email malformado é rejeitado",
			req: &domain.RegisterCustomerRequest{
				FirstName: "Maria",
				LastName:  "Silva",
				Phone:     "4155550132",
				Email:     "maria@",
			},
			setup:     func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {},
			expectErr: ErrInvalidEmail,
		},
		{
			name: "Telefone duplicado é rejeitado sem consumir identificador",
			req: &domain.RegisterCustomerRequest{
				FirstName: "Maria",
				LastName:  "Silva",
				Phone:     "4155550132",
			},
			setup: func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				repo.EXPECT().GetByPhone("4155550132").
					Return(&domain.Customer{ID: "C00001", Phone: "4155550132"}, nil)
				// Nenhuma chamada a NextCustomerID: a rejeição não gasta número
			},
			expectErr: ErrPhoneAlreadyExists,
		},
		{
			name: "Email duplicado é rejeitado sem consumir identificador",
			req: &domain.RegisterCustomerRequest{
				FirstName: "Maria",
				LastName:  "Silva",
				Phone:     "4155550199",
				Email:     "maria@example.com",
			},
			setup: func(repo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				repo.EXPECT().GetByPhone("4155550199").Return(nil, nil)
				repo.EXPECT().GetByEmail("maria@example.com").
					Return(&domain.Customer{ID: "C00001", Email: "maria@example.com"}, nil)
			},
			expectErr: ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockCustomerRepository(ctrl)
			mockAllocator := allocatormocks.NewMockAllocator(ctrl)
			tt.setup(mockRepo, mockAllocator)

			service := NewService(mockRepo, mockAllocator)

			customer, err := service.Register(tt.req)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, customer)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, customer)
		})
	}
}

func TestService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("FindByID com formato inválido devolve nil sem consultar o banco", func(t *testing.T) {
		mockRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)
		service := NewService(mockRepo, mockAllocator)

		customer, err := service.FindByID("X123")
		assert.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("FindByPhone normaliza a entrada antes de buscar", func(t *testing.T) {
		mockRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)
		service := NewService(mockRepo, mockAllocator)

		expected := &domain.Customer{ID: "C00001", Phone: "4155550132"}
		mockRepo.EXPECT().GetByPhone("4155550132").Return(expected, nil)

		customer, err := service.FindByPhone("(415) 555-0132")
		assert.NoError(t, err)
		assert.Equal(t, expected, customer)
	})

	t.Run("FindByPhone com entrada não normalizável devolve nil", func(t *testing.T) {
		mockRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)
		service := NewService(mockRepo, mockAllocator)

		customer, err := service.FindByPhone("abc")
		assert.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("FindByEmail compara em caixa baixa", func(t *testing.T) {
		mockRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)
		service := NewService(mockRepo, mockAllocator)

		expected := &domain.Customer{ID: "C00001", Email: "maria@example.com"}
		mockRepo.EXPECT().GetByEmail("maria@example.com").Return(expected, nil)

		customer, err := service.FindByEmail("MARIA@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, expected, customer)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := func() *domain.Customer {
		return &domain.Customer{
			ID:        "C00001",
			FirstName: "Maria",
			LastName:  "Silva",
			Phone:     "4155550132",
			Email:     "maria@example.com",
		}
	}

	tests := []struct {
		name      string
		req       *domain.UpdateCustomerRequest
		setup     func(repo *mocks.MockCustomerRepository)
		expectErr error
		validate  func(t *testing.T, customer *domain.Customer)
	}{
		{
			name: "Atualização parcial mescla apenas os campos fornecidos",
			req: &domain.UpdateCustomerRequest{
				ID:    "C00001",
				Phone: stringPtr("415-555-0177"),
			},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().GetByID("C00001").Return(existing(), nil)
				repo.EXPECT().GetByPhone("4155550177").Return(nil, nil)
				repo.EXPECT().GetByEmail("maria@example.com").
					Return(existing(), nil) // colidir consigo mesma é permitido
				repo.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Equal(t, "4155550177", customer.Phone)
				assert.Equal(t, "Maria", customer.FirstName)
				assert.Equal(t, "maria@example.com", customer.Email)
			},
		},
		{
			name: "Email vazio remove o email do cadastro",
			req: &domain.UpdateCustomerRequest{
				ID:    "C00001",
				Email: stringPtr(""),
			},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().GetByID("C00001").Return(existing(), nil)
				repo.EXPECT().GetByPhone("4155550132").Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, customer *domain.Customer) {
				assert.Empty(t, customer.Email)
			},
		},
		{
			name: "Campo inválido aborta a atualização antes de qualquer gravação",
			req: &domain.UpdateCustomerRequest{
				ID:        "C00001",
				FirstName: stringPtr("Mariana"),
				Phone:     stringPtr("123"),
			},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().GetByID("C00001").Return(existing(), nil)
				// Nenhuma chamada a Update: a falha em um campo rejeita o todo
			},
			expectErr: ErrInvalidPhone,
		},
		{
			name: "Identificador com formato inválido é rejeitado",
			req: &domain.UpdateCustomerRequest{
				ID:    "S00001",
				Phone: stringPtr("4155550132"),
			},
			setup:     func(repo *mocks.MockCustomerRepository) {},
			expectErr: ErrInvalidCustomerID,
		},
		{
			name: "Cliente inexistente é rejeitado",
			req: &domain.UpdateCustomerRequest{
				ID:    "C00099",
				Phone: stringPtr("4155550132"),
			},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().GetByID("C00099").Return(nil, nil)
			},
			expectErr: ErrCustomerNotFound,
		},
		{
			name: "Telefone já usado por outro cliente é rejeitado",
			req: &domain.UpdateCustomerRequest{
				ID:    "C00001",
				Phone: stringPtr("4155550199"),
			},
			setup: func(repo *mocks.MockCustomerRepository) {
				repo.EXPECT().GetByID("C00001").Return(existing(), nil)
				repo.EXPECT().GetByPhone("4155550199").
					Return(&domain.Customer{ID: "C00002", Phone: "4155550199"}, nil)
			},
			expectErr: ErrPhoneAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockCustomerRepository(ctrl)
			mockAllocator := allocatormocks.NewMockAllocator(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo, mockAllocator)

			customer, err := service.Update(tt.req)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, customer)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, customer)
		})
	}
}

func TestService_Register_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRepository(ctrl)
	mockAllocator := allocatormocks.NewMockAllocator(ctrl)
	service := NewService(mockRepo, mockAllocator)

	repoErr := errors.New("conexão recusada")
	mockRepo.EXPECT().GetByPhone("4155550132").Return(nil, repoErr)

	customer, err := service.Register(&domain.RegisterCustomerRequest{
		FirstName: "Maria",
		LastName:  "Silva",
		Phone:     "4155550132",
	})

	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, customer)
}
