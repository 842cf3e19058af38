package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func TestStateCodeService_List_Success(t *testing.T) {
	mockRepo := new(mocks.MockStateCodeRepo)
	svc := service.NewStateCodeService(mockRepo)

	expected := []domain.StateCode{
		{Code: "29", Name: "Karnataka"},
		{Code: "32", Name: "Kerala"},
	}
	mockRepo.On("LoadAll", mock.Anything).Return(expected, nil)

	codes, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, codes)
	mockRepo.AssertExpectations(t)
}

func TestStateCodeService_List_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockStateCodeRepo)
	svc := service.NewStateCodeService(mockRepo)

	mockRepo.On("LoadAll", mock.Anything).Return(nil, errors.New("db error"))

	codes, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, codes)
	mockRepo.AssertExpectations(t)
}
