package repository

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildSearchFilter переводит строку запроса в фильтр по занятиям.
//
// Числовой запрос сравнивает price и spaces и дополнительно ищет
// подстроку в subject/location (чтобы "5" находило и "Year 5").
// Запрос из одного символа слишком короток для текстового индекса,
// поэтому идет через substring-поиск. Все остальное отдается
// текстовому индексу хранилища (токенизация и релевантность на его
// стороне).
func BuildSearchFilter(query string) (bson.M, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}

	contains := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	if n, err := strconv.ParseFloat(query, 64); err == nil {
		return bson.M{"$or": []bson.M{
			{"price": n},
			{"spaces": n},
			{"subject": contains},
			{"location": contains},
		}}, nil
	}

	if utf8.RuneCountInString(query) == 1 {
		return bson.M{"$or": []bson.M{
			{"subject": contains},
			{"location": contains},
		}}, nil
	}

	return bson.M{"$text": bson.M{"$search": query}}, nil
}
