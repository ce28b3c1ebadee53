package usecase

import (
	"context"
	"errors"

	"doctorhub-api/internal/converter"
	"doctorhub-api/internal/delivery/dto"
	"doctorhub-api/internal/domain/entity"
	"doctorhub-api/internal/domain/repository"
	"doctorhub-api/internal/service"

	"github.com/sirupsen/logrus"
)

const maxTrendingLimit = 100

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrDoctorExists   = errors.New("doctor already exists")
	ErrReadOnlySource = errors.New("cannot add doctor when using remote mode")
)

type DoctorUsecase interface {
	Health(ctx context.Context) (*dto.HealthResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	SearchDoctors(ctx context.Context, keyword string) (*dto.DoctorSearchResponse, error)
	SearchByName(ctx context.Context, name string) (*dto.DoctorSearchResponse, error)
	SearchBySpecialization(ctx context.Context, specialization string) (*dto.DoctorSearchResponse, error)
	Autocomplete(ctx context.Context, keyword string) (*dto.AutocompleteResponse, error)
	GetSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error)
	GetAvailableDoctors(ctx context.Context, day string) (*dto.AvailableDoctorsResponse, error)
	GetTrendingSearches(ctx context.Context, limit int) (*dto.TrendingSearchListResponse, error)
}

type doctorUsecase struct {
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	analyticsRepo repository.SearchAnalyticsRepository
	searchService service.DoctorSearchService
	trendingLimit int
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	analyticsRepo repository.SearchAnalyticsRepository,
	searchService service.DoctorSearchService,
	trendingLimit int,
) DoctorUsecase {
	return &doctorUsecase{
		log:           log,
		doctorRepo:    doctorRepo,
		analyticsRepo: analyticsRepo,
		searchService: searchService,
		trendingLimit: trendingLimit,
	}
}

// loadDoctors reads the source fresh. A failed load is logged and treated as an
// empty directory, so callers cannot tell "no data" from "source unreachable".
func (u *doctorUsecase) loadDoctors(ctx context.Context) []entity.DoctorRecord {
	records, err := u.doctorRepo.Load(ctx)
	if err != nil {
		u.log.WithField("source", u.doctorRepo.SourceName()).Warnf("Failed to load doctors: %+v", err)
		return []entity.DoctorRecord{}
	}
	return records
}

func (u *doctorUsecase) Health(ctx context.Context) (*dto.HealthResponse, error) {
	total := len(u.loadDoctors(ctx))

	return &dto.HealthResponse{
		Status:       "healthy",
		Message:      "Doctor Hub API is running",
		DataSource:   u.doctorRepo.SourceName(),
		TotalDoctors: &total,
	}, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors := converter.DoctorRecordsToResponses(u.loadDoctors(ctx))

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Count:   len(doctors),
	}, nil
}

// GetDoctor returns the first record, in source order, whose derived id equals id.
func (u *doctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	for _, record := range u.loadDoctors(ctx) {
		if converter.DoctorID(record.Name(), record.Specialization()) == id {
			doctor := converter.DoctorRecordToResponse(record)
			return &doctor, nil
		}
	}

	u.log.Debugf("Failed to find doctor: %d", id)
	return nil, ErrDoctorNotFound
}

func (u *doctorUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	stored, err := u.doctorRepo.Add(ctx, converter.CreateDoctorRequestToRecord(req))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReadOnlySource):
			return nil, ErrReadOnlySource
		case errors.Is(err, repository.ErrDoctorExists):
			return nil, ErrDoctorExists
		}
		u.log.Warnf("Failed to add doctor: %+v", err)
		return nil, err
	}

	u.log.WithField("source", u.doctorRepo.SourceName()).Infof("Doctor added: %s (%s)", stored.Name(), stored.Specialization())

	doctor := converter.DoctorRecordToResponse(stored)
	return &doctor, nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, keyword string) (*dto.DoctorSearchResponse, error) {
	results := converter.DoctorRecordsToResponses(u.searchService.Search(u.loadDoctors(ctx), keyword))

	if err := u.analyticsRepo.RecordSearch(ctx, keyword); err != nil {
		u.log.Warnf("Failed to record search: %+v", err)
	}

	return &dto.DoctorSearchResponse{
		Query:   keyword,
		Results: results,
		Count:   len(results),
	}, nil
}

func (u *doctorUsecase) SearchByName(ctx context.Context, name string) (*dto.DoctorSearchResponse, error) {
	results := converter.DoctorRecordsToResponses(u.searchService.FilterByName(u.loadDoctors(ctx), name))

	return &dto.DoctorSearchResponse{
		Query:   name,
		Results: results,
		Count:   len(results),
	}, nil
}

func (u *doctorUsecase) SearchBySpecialization(ctx context.Context, specialization string) (*dto.DoctorSearchResponse, error) {
	results := converter.DoctorRecordsToResponses(u.searchService.FilterBySpecialization(u.loadDoctors(ctx), specialization))

	return &dto.DoctorSearchResponse{
		Query:   specialization,
		Results: results,
		Count:   len(results),
	}, nil
}

func (u *doctorUsecase) Autocomplete(ctx context.Context, keyword string) (*dto.AutocompleteResponse, error) {
	suggestions := u.searchService.Autocomplete(u.loadDoctors(ctx), keyword)

	return &dto.AutocompleteResponse{
		Query:       keyword,
		Suggestions: suggestions,
		Count:       len(suggestions),
	}, nil
}

func (u *doctorUsecase) GetSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error) {
	specializations := u.searchService.Specializations(u.loadDoctors(ctx))

	return &dto.SpecializationListResponse{
		Specializations: specializations,
		Count:           len(specializations),
	}, nil
}

func (u *doctorUsecase) GetAvailableDoctors(ctx context.Context, day string) (*dto.AvailableDoctorsResponse, error) {
	available := converter.DoctorRecordsToResponses(u.searchService.FilterByAvailabilityDay(u.loadDoctors(ctx), day))

	return &dto.AvailableDoctorsResponse{
		Day:              day,
		AvailableDoctors: available,
		Count:            len(available),
	}, nil
}

// GetTrendingSearches falls back to the configured limit for limit <= 0 and caps it at 100.
func (u *doctorUsecase) GetTrendingSearches(ctx context.Context, limit int) (*dto.TrendingSearchListResponse, error) {
	if limit <= 0 {
		limit = u.trendingLimit
	}
	if limit > maxTrendingLimit {
		limit = maxTrendingLimit
	}

	stats, err := u.analyticsRepo.TopSearches(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to get trending searches: %+v", err)
		return nil, err
	}

	searches := converter.SearchStatsToResponses(stats)
	return &dto.TrendingSearchListResponse{
		Searches: searches,
		Count:    len(searches),
	}, nil
}
