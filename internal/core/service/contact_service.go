package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

const (
	DefaultContactDelay = time.Second
	DefaultMapEmbedURL  = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d435519.227274671!2d74.00472390820312!3d31.483103300000006!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x39190483e58107d9%3A0xc23abe6ccc7e2462!2sLahore%2C%20Punjab%2C%20Pakistan!5e0!3m2!1sen!2s!4v1234567890123!5m2!1sen!2s"
)

// ContactService accepts contact-form messages. Messages are logged, not
// delivered anywhere.
type ContactService struct {
	notifier ports.Notifier
	clock    ports.Clock
	delay    time.Duration
	info     ports.ContactInfo
	log      zerolog.Logger
}

var _ ports.ContactService = (*ContactService)(nil)

func NewContactService(notifier ports.Notifier, clock ports.Clock, delay time.Duration, mapEmbedURL string, log zerolog.Logger) *ContactService {
	if mapEmbedURL == "" {
		mapEmbedURL = DefaultMapEmbedURL
	}
	return &ContactService{
		notifier: notifier,
		clock:    clock,
		delay:    delay,
		info: ports.ContactInfo{
			Email:    "ghazalahamayo@gmail.com",
			Phone:    "03221458311",
			Hours:    "Monday – Saturday, 9:00 AM – 7:00 PM. Sunday: Closed",
			Address:  "Lahore, Pakistan",
			MapEmbed: mapEmbedURL,
		},
		log: log,
	}
}

func (s *ContactService) Send(ctx context.Context, in ports.ContactInput) error {
	if blank(in.Name, in.Email, in.Subject, in.Message) {
		s.notifier.Publish(domain.ErrorToast(domain.MsgRequiredFields))
		return domain.ErrMissingFields
	}

	if err := s.clock.Sleep(ctx, s.delay); err != nil {
		return err
	}

	s.log.Info().
		Str("from", in.Email).
		Str("subject", in.Subject).
		Int("length", len(in.Message)).
		Msg("contact message received")
	s.notifier.Publish(domain.SuccessToast(domain.MsgContactSent))
	return nil
}

func (s *ContactService) Info() ports.ContactInfo {
	return s.info
}
