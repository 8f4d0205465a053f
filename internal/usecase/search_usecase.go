package usecase

import (
	"context"
	"errors"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrMissingSearchParam = errors.New("missing search parameter")

// ISearchUseCase looks up fee records for the public payment flow.
type ISearchUseCase interface {
	SearchContributivo(ctx context.Context, dni string) ([]entities.FeeRecord, error)
	SearchPatente(ctx context.Context, dni string) ([]entities.FeeRecord, error)
	SearchDeuda(ctx context.Context, name string) ([]entities.FeeRecord, error)
}

type SearchUseCase struct {
	repo interfaces.IFeeRecordRepository
	logg *logrus.Logger
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(repo interfaces.IFeeRecordRepository, logg *logrus.Logger) *SearchUseCase {
	return &SearchUseCase{repo: repo, logg: logg}
}

func (u *SearchUseCase) SearchContributivo(ctx context.Context, dni string) ([]entities.FeeRecord, error) {
	return u.byDNI(ctx, entities.ItemTypeLote, dni)
}

func (u *SearchUseCase) SearchPatente(ctx context.Context, dni string) ([]entities.FeeRecord, error) {
	return u.byDNI(ctx, entities.ItemTypeVehiculo, dni)
}

// SearchDeuda matches a case-insensitive substring of the holder name.
func (u *SearchUseCase) SearchDeuda(ctx context.Context, name string) ([]entities.FeeRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingSearchParam
	}
	if u.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	records, err := u.repo.SearchByName(ctx, entities.ItemTypeDeudaGeneral, name)
	if err != nil {
		u.logg.WithError(err).WithField("item_type", entities.ItemTypeDeudaGeneral).Error("[search][usecase] store query failed")
		return nil, err
	}
	u.logg.WithFields(logrus.Fields{"item_type": entities.ItemTypeDeudaGeneral, "results": len(records)}).Info("[search][usecase] search done")
	return records, nil
}

func (u *SearchUseCase) byDNI(ctx context.Context, itemType entities.ItemType, dni string) ([]entities.FeeRecord, error) {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil, ErrMissingSearchParam
	}
	if u.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	records, err := u.repo.SearchByDNI(ctx, itemType, dni)
	if err != nil {
		u.logg.WithError(err).WithField("item_type", itemType).Error("[search][usecase] store query failed")
		return nil, err
	}
	u.logg.WithFields(logrus.Fields{"item_type": itemType, "results": len(records)}).Info("[search][usecase] search done")
	return records, nil
}
