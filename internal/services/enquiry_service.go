package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel_backend/internal/email"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const EnquiryReceivedMessage = "Thank you! We have received your enquiry and will get back to you shortly."

type EnquiryService interface {
	CreateEnquiry(db *gorm.DB, req *dto.CreateEnquiryRequest) (*dto.CreateEnquiryResponse, error)
	ListEnquiries(db *gorm.DB, query *dto.EnquiryListQuery) (*dto.EnquiryListResponse, error)
	GetEnquiry(db *gorm.DB, id string) (*models.Enquiry, error)
	UpdateEnquiryStatus(db *gorm.DB, id string, req *dto.UpdateEnquiryRequest) (*models.Enquiry, error)
}

// EnquiryMailer sends the agency notification and the customer receipt.
// NotifyTo empty disables the agency notification.
type EnquiryMailer struct {
	Provider  email.Provider
	Templates *email.TemplateManager
	NotifyTo  []string
	BaseURL   string
}

type enquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	packageRepo repositories.PackageRepository
	mailer      *EnquiryMailer
}

func NewEnquiryService(
	enquiryRepo repositories.EnquiryRepository,
	packageRepo repositories.PackageRepository,
	mailer *EnquiryMailer,
) EnquiryService {
	return &enquiryService{
		enquiryRepo: enquiryRepo,
		packageRepo: packageRepo,
		mailer:      mailer,
	}
}

func (s *enquiryService) CreateEnquiry(db *gorm.DB, req *dto.CreateEnquiryRequest) (*dto.CreateEnquiryResponse, error) {
	enquiry := &models.Enquiry{
		Type:      models.EnquiryTypeEnquiry,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Travelers: req.Travelers,
		Message:   strings.TrimSpace(req.Message),
		Status:    models.EnquiryStatusNew,
	}
	if req.Type != "" {
		enquiry.Type, _ = models.ParseEnquiryType(req.Type)
	}
	if enquiry.Travelers < 1 {
		enquiry.Travelers = 1
	}
	if req.TravelDate != "" {
		date, err := time.Parse("2006-01-02", req.TravelDate)
		if err != nil {
			return nil, fieldError("travelDate", "Must be a date in YYYY-MM-DD format")
		}
		enquiry.TravelDate = &date
	}

	var pkg *models.Package
	if id := optional(req.PackageID); id != nil {
		p, err := s.packageRepo.FindPackageByID(db, *id)
		if err != nil {
			return nil, mapRepoError(err)
		}
		if p.Status != models.ListingStatusActive {
			return nil, apperrors.ErrPackageNotFound
		}
		pkg = p
		enquiry.PackageID = &p.ID
	}

	if err := s.enquiryRepo.CreateEnquiry(db, enquiry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(contextOf(db), "enquiry received",
		"enquiry_id", enquiry.ID,
		"type", enquiry.Type,
		"package_id", enquiry.PackageID,
	)

	s.notify(db, enquiry, pkg)
	enquiry.Package = pkg

	return &dto.CreateEnquiryResponse{Enquiry: enquiry, Message: EnquiryReceivedMessage}, nil
}

func (s *enquiryService) ListEnquiries(db *gorm.DB, query *dto.EnquiryListQuery) (*dto.EnquiryListResponse, error) {
	page, limit := query.Normalize()

	filter := repositories.EnquiryFilter{Page: page, Limit: limit}
	if query.Status != "" {
		filter.Status, _ = models.ParseEnquiryStatus(query.Status)
	}
	if query.Type != "" {
		filter.Type, _ = models.ParseEnquiryType(query.Type)
	}

	enquiries, total, err := s.enquiryRepo.FindEnquiries(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if enquiries == nil {
		enquiries = []models.Enquiry{}
	}

	return &dto.EnquiryListResponse{
		Enquiries:  enquiries,
		Total:      total,
		Page:       page,
		TotalPages: dto.TotalPages(total, limit),
	}, nil
}

func (s *enquiryService) GetEnquiry(db *gorm.DB, id string) (*models.Enquiry, error) {
	enquiry, err := s.enquiryRepo.FindEnquiryByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return enquiry, nil
}

func (s *enquiryService) UpdateEnquiryStatus(db *gorm.DB, id string, req *dto.UpdateEnquiryRequest) (*models.Enquiry, error) {
	status, ok := models.ParseEnquiryStatus(req.Status)
	if !ok {
		return nil, fieldError("status", "Must be one of: NEW, CONTACTED, CONFIRMED, CANCELLED")
	}

	if err := s.enquiryRepo.UpdateStatus(db, id, status); err != nil {
		return nil, mapRepoError(err)
	}

	enquiry, err := s.enquiryRepo.FindEnquiryByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	logger.CtxInfo(contextOf(db), "enquiry status updated", "enquiry_id", id, "status", status)
	return enquiry, nil
}

// notify is best effort: the enquiry is already stored.
func (s *enquiryService) notify(db *gorm.DB, enquiry *models.Enquiry, pkg *models.Package) {
	if s.mailer == nil || s.mailer.Provider == nil || s.mailer.Templates == nil {
		return
	}
	ctx := contextOf(db)
	base := strings.TrimRight(s.mailer.BaseURL, "/")

	data := email.TemplateData{
		"Type":      strings.ToLower(string(enquiry.Type)),
		"Name":      enquiry.Name,
		"Email":     enquiry.Email,
		"Phone":     enquiry.Phone,
		"Travelers": enquiry.Travelers,
		"Message":   enquiry.Message,
		"AdminURL":  fmt.Sprintf("%s/admin/enquiries/%s", base, enquiry.ID),
		"Reference": enquiry.ID,
	}
	if enquiry.TravelDate != nil {
		data["TravelDate"] = enquiry.TravelDate.Format("2 Jan 2006")
	}
	if pkg != nil {
		data["PackageName"] = pkg.Name
		data["PackageURL"] = fmt.Sprintf("%s/packages/%s", base, pkg.Slug)
	}

	if len(s.mailer.NotifyTo) > 0 {
		subject := fmt.Sprintf("New %s from %s", strings.ToLower(string(enquiry.Type)), enquiry.Name)
		s.send(ctx, email.TemplateEnquiryNotification, data, &email.Email{
			To:      s.mailer.NotifyTo,
			ReplyTo: enquiry.Email,
			Subject: subject,
		})
	}

	s.send(ctx, email.TemplateEnquiryReceipt, data, &email.Email{
		To:      []string{enquiry.Email},
		Subject: "We have received your enquiry",
	})
}

func (s *enquiryService) send(ctx context.Context, template string, data email.TemplateData, msg *email.Email) {
	body, err := s.mailer.Templates.Render(template, data)
	if err != nil {
		logger.CtxWithError(ctx, "failed to render email", err, "template", template)
		return
	}
	msg.HTMLBody = body

	if err := s.mailer.Provider.Send(ctx, msg); err != nil {
		logger.CtxWarn(ctx, "failed to send email", "template", template, "error", err.Error())
	}
}
