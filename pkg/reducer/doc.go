/*
The reducer deduces which ingredient carries which allergen.

First every allergen gets the ingredients which appear in all foods declaring it as candidates. Ingredients which are no
candidate for any allergen are safe. Then resolved allergens are eliminated from the candidates of all other allergens
until every allergen is left with exactly one ingredient.
*/
package reducer
